package exporter

import (
	"github.com/zaphar/win-utils/internal/pdh"
)

// valueStream is the pull side of one attached counter.
type valueStream interface {
	Next() (float64, error)
	Path() string
}

// counterSource is the slice of the counter subsystem the exporter drives:
// wildcard expansion ahead of time, stream attachment at setup, release at
// shutdown. Tests substitute a scripted implementation.
type counterSource interface {
	ExpandWildcardPath(path string) ([]string, error)
	AddStream(path string) (valueStream, error)
	Close() error
}

// pdhSource is the production counterSource: one catalog for expansion and
// one query owning every attached counter. Closing the query releases the
// counters with it.
type pdhSource struct {
	catalog *pdh.Catalog
	query   *pdh.Query
}

func openPDHSource(machine string) (counterSource, error) {
	query, err := pdh.OpenQuery(machine)
	if err != nil {
		return nil, err
	}
	return &pdhSource{
		catalog: pdh.NewCatalog().WithMachine(machine),
		query:   query,
	}, nil
}

func (s *pdhSource) ExpandWildcardPath(path string) ([]string, error) {
	return s.catalog.ExpandWildcardPath(path)
}

func (s *pdhSource) AddStream(path string) (valueStream, error) {
	return pdh.StreamFromPath[float64](s.query, path)
}

func (s *pdhSource) Close() error {
	return s.query.Close()
}
