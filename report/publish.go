package report

import (
	"context"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	googleproto "google.golang.org/protobuf/proto"

	"github.com/pagelab/ppagerank/proto"
)

// Publish sends the terminal summary to a RabbitMQ queue so downstream
// consumers can pick up results without scraping stdout. url is a full
// amqp:// connection string.
func Publish(url, queueName string, sum *proto.Summary) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return errors.Wrap(err, "could not connect to RabbitMQ")
	}
	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "could not open a channel to RabbitMQ")
	}
	defer ch.Close()

	queue, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return errors.Wrapf(err, "could not declare queue %s", queueName)
	}

	body, err := googleproto.Marshal(sum)
	if err != nil {
		return errors.Wrap(err, "could not marshal summary")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = ch.PublishWithContext(ctx,
		"",         // exchange
		queue.Name, // routing key
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType: "application/x-protobuf",
			Body:        body,
		})
	if err != nil {
		return errors.Wrapf(err, "could not publish summary to %s", queueName)
	}
	return nil
}

// QueueURL builds the broker connection string from its parts.
func QueueURL(user, pass, host string) string {
	return "amqp://" + user + ":" + pass + "@" + host + ":5672/"
}
