package collective

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/pagelab/ppagerank/proto"
)

// Peer identifies one rank of a distributed run.
type Peer struct {
	Rank int
	Addr string
}

// Mesh is the gRPC substrate: every rank serves the Collective service
// and pushes its payloads to every peer, collecting theirs from a
// sequence-numbered mailbox. The sequence counter advances identically
// on all ranks because the SPMD loop issues collectives in lockstep.
type Mesh struct {
	rank    int
	size    int
	box     *mailbox
	conns   []*grpc.ClientConn
	clients []proto.CollectiveClient
	server  *grpc.Server
	lis     net.Listener
	seq     uint64
	log     zerolog.Logger
}

// DialMesh starts the local Collective server on peers[rank].Addr and
// connects to every other peer. Peers must list every rank of the run,
// in rank order, with identical contents on all ranks.
func DialMesh(ctx context.Context, rank int, peers []Peer, log zerolog.Logger) (*Mesh, error) {
	if rank < 0 || rank >= len(peers) {
		return nil, errors.Errorf("collective: rank %d outside peer list of %d", rank, len(peers))
	}
	for i, p := range peers {
		if p.Rank != i {
			return nil, errors.Errorf("collective: peer list out of order: position %d holds rank %d", i, p.Rank)
		}
	}
	m := &Mesh{
		rank:    rank,
		size:    len(peers),
		box:     newMailbox(),
		conns:   make([]*grpc.ClientConn, len(peers)),
		clients: make([]proto.CollectiveClient, len(peers)),
		log:     log.With().Int("rank", rank).Logger(),
	}
	lis, err := net.Listen("tcp", peers[rank].Addr)
	if err != nil {
		return nil, errors.Wrapf(err, "collective: rank %d cannot listen on %s", rank, peers[rank].Addr)
	}
	m.lis = lis
	m.server = grpc.NewServer()
	proto.RegisterCollectiveServer(m.server, &meshServer{box: m.box})
	go func() {
		if err := m.server.Serve(lis); err != nil {
			m.box.fail(errors.Wrap(err, "collective: server stopped"))
		}
	}()
	for r, p := range peers {
		if r == rank {
			continue
		}
		conn, err := grpc.DialContext(ctx, p.Addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			m.Close()
			return nil, errors.Wrapf(err, "collective: rank %d cannot reach rank %d at %s", rank, r, p.Addr)
		}
		m.conns[r] = conn
		m.clients[r] = proto.NewCollectiveClient(conn)
	}
	m.log.Info().Int("size", m.size).Str("listen", lis.Addr().String()).Msg("collective mesh up")
	return m, nil
}

func (m *Mesh) Rank() int { return m.rank }
func (m *Mesh) Size() int { return m.size }

// Addr returns the bound listen address.
func (m *Mesh) Addr() string { return m.lis.Addr().String() }

// Close stops the server and drops all peer connections. The server
// drains in-flight RPCs first: a slower peer whose deposit was already
// accepted must still receive its Ack, otherwise it would report a
// transport failure on a run that succeeded. All RPCs are unary, so the
// drain cannot hang.
func (m *Mesh) Close() {
	for _, conn := range m.conns {
		if conn != nil {
			conn.Close()
		}
	}
	if m.server != nil {
		m.server.GracefulStop()
	}
}

func (m *Mesh) next() uint64 {
	m.seq++
	return m.seq
}

// push delivers one payload to every peer concurrently. Any send failure
// aborts the whole run: the failure is broadcast so no rank stays parked.
func (m *Mesh) push(send func(proto.CollectiveClient) error) error {
	var wg sync.WaitGroup
	errs := make([]error, m.size)
	for r := 0; r < m.size; r++ {
		if r == m.rank {
			continue
		}
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			errs[r] = send(m.clients[r])
		}(r)
	}
	wg.Wait()
	for r, err := range errs {
		if err != nil {
			return m.abort(errors.Wrapf(err, "collective: push to rank %d failed", r))
		}
	}
	return nil
}

// abort marks the run failed locally and tells every reachable peer,
// so the failure is observed by all ranks instead of hanging a barrier.
func (m *Mesh) abort(err error) error {
	m.log.Error().Err(err).Msg("aborting collective run")
	m.box.fail(err)
	msg := &proto.Abort{From: int32(m.rank), Reason: err.Error()}
	for r, c := range m.clients {
		if r == m.rank || c == nil {
			continue
		}
		// Best effort; the peer may already be gone.
		_, _ = c.Fail(context.Background(), msg)
	}
	return err
}

func (m *Mesh) AllReduce(op Op, vals []float64) ([]float64, error) {
	seq := m.next()
	msg := &proto.ReduceSegment{
		Seq:    seq,
		From:   int32(m.rank),
		Op:     int32(op),
		Values: vals,
	}
	if err := m.push(func(c proto.CollectiveClient) error {
		_, err := c.Reduce(context.Background(), msg)
		return err
	}); err != nil {
		return nil, err
	}
	inbox, err := m.box.wait(seq, kindReduce, m.size-1)
	if err != nil {
		return nil, err
	}
	var acc []float64
	for from := 0; from < m.size; from++ {
		src := vals
		if from != m.rank {
			p := inbox[from]
			if p.op != op {
				return nil, m.abort(errors.Errorf("collective: rank %d reduced with %s, expected %s", from, p.op, op))
			}
			src = p.values
		}
		if acc == nil {
			acc = make([]float64, len(src))
			copy(acc, src)
			continue
		}
		if err := combine(op, acc, src); err != nil {
			return nil, m.abort(err)
		}
	}
	return acc, nil
}

func (m *Mesh) Exchange(layout Layout, contribs []Contribution) ([]float64, error) {
	seq := m.next()
	indices := make([][]int64, m.size)
	values := make([][]float64, m.size)
	for _, c := range contribs {
		if c.Index < 0 || c.Index >= layout.N() {
			return nil, m.abort(errors.Errorf("collective: contribution index %d outside [0, %d)", c.Index, layout.N()))
		}
		owner := layout.Owner(c.Index)
		indices[owner] = append(indices[owner], c.Index)
		values[owner] = append(values[owner], c.Value)
	}
	// Empty segments are still sent so every rank's arrival count lines up.
	var wg sync.WaitGroup
	errs := make([]error, m.size)
	for r := 0; r < m.size; r++ {
		if r == m.rank {
			continue
		}
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			_, err := m.clients[r].Exchange(context.Background(), &proto.VectorSegment{
				Seq:     seq,
				From:    int32(m.rank),
				Indices: indices[r],
				Values:  values[r],
			})
			errs[r] = err
		}(r)
	}
	wg.Wait()
	for r, err := range errs {
		if err != nil {
			return nil, m.abort(errors.Wrapf(err, "collective: exchange with rank %d failed", r))
		}
	}
	inbox, err := m.box.wait(seq, kindExchange, m.size-1)
	if err != nil {
		return nil, err
	}
	lo, hi := layout.Range(m.rank)
	seg := make([]float64, layout.LocalLen(m.rank))
	for from := 0; from < m.size; from++ {
		var idx []int64
		var val []float64
		if from == m.rank {
			idx, val = indices[m.rank], values[m.rank]
		} else {
			p := inbox[from]
			idx, val = p.indices, p.values
		}
		if err := accumulate(seg, lo, hi, idx, val); err != nil {
			return nil, m.abort(err)
		}
	}
	return seg, nil
}

func (m *Mesh) Gather(root int, local []float64) ([]float64, error) {
	seq := m.next()
	if m.rank != root {
		_, err := m.clients[root].Gather(context.Background(), &proto.GatherSegment{
			Seq:    seq,
			From:   int32(m.rank),
			Values: local,
		})
		if err != nil {
			return nil, m.abort(errors.Wrapf(err, "collective: gather to rank %d failed", root))
		}
		return nil, nil
	}
	inbox, err := m.box.wait(seq, kindGather, m.size-1)
	if err != nil {
		return nil, err
	}
	var full []float64
	for from := 0; from < m.size; from++ {
		if from == m.rank {
			full = append(full, local...)
			continue
		}
		full = append(full, inbox[from].values...)
	}
	return full, nil
}

func (m *Mesh) Barrier() error {
	seq := m.next()
	msg := &proto.SyncPoint{Seq: seq, From: int32(m.rank)}
	if err := m.push(func(c proto.CollectiveClient) error {
		_, err := c.Sync(context.Background(), msg)
		return err
	}); err != nil {
		return err
	}
	_, err := m.box.wait(seq, kindSync, m.size-1)
	return err
}

// meshServer deposits peer payloads into the mailbox.
type meshServer struct {
	proto.UnimplementedCollectiveServer
	box *mailbox
}

func (s *meshServer) Reduce(_ context.Context, seg *proto.ReduceSegment) (*proto.Ack, error) {
	err := s.box.deposit(seg.Seq, kindReduce, int(seg.From), payload{op: Op(seg.Op), values: seg.Values})
	return &proto.Ack{}, err
}

func (s *meshServer) Exchange(_ context.Context, seg *proto.VectorSegment) (*proto.Ack, error) {
	err := s.box.deposit(seg.Seq, kindExchange, int(seg.From), payload{indices: seg.Indices, values: seg.Values})
	return &proto.Ack{}, err
}

func (s *meshServer) Gather(_ context.Context, seg *proto.GatherSegment) (*proto.Ack, error) {
	err := s.box.deposit(seg.Seq, kindGather, int(seg.From), payload{values: seg.Values})
	return &proto.Ack{}, err
}

func (s *meshServer) Sync(_ context.Context, p *proto.SyncPoint) (*proto.Ack, error) {
	err := s.box.deposit(p.Seq, kindSync, int(p.From), payload{})
	return &proto.Ack{}, err
}

func (s *meshServer) Fail(_ context.Context, a *proto.Abort) (*proto.Ack, error) {
	s.box.fail(fmt.Errorf("collective: rank %d aborted: %s", a.From, a.Reason))
	return &proto.Ack{}, nil
}
