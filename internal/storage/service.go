package storage

import (
	"chaindb/internal/metrics"
)

type Service struct {
	store *Store
}

func NewService(dir string, opts Options) (*Service, error) {
	store, err := Open(dir, opts)
	if err != nil {
		return nil, err
	}
	metrics.StorageKeysTotal.Set(float64(store.Len()))
	return &Service{store: store}, nil
}

func (s *Service) Get(key []byte) ([]byte, bool, error) {
	v, ok, err := s.store.Get(key)
	metrics.StorageOperationsTotal.WithLabelValues("get", status(err)).Inc()
	return v, ok, err
}

func (s *Service) Put(key, value []byte) error {
	err := s.store.Put(key, value)
	metrics.StorageOperationsTotal.WithLabelValues("put", status(err)).Inc()
	if err == nil {
		metrics.StorageKeysTotal.Set(float64(s.store.Len()))
	}
	return err
}

func (s *Service) Len() int {
	return s.store.Len()
}

func (s *Service) Close() error {
	return s.store.Close()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
