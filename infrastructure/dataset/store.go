package dataset

import (
	"sync"

	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// Store é o cache de processo do Dataset: o arquivo é lido uma única vez e o
// resultado fica imutável até o processo reiniciar. Depois do primeiro Load
// não existe nenhum escritor, então leitores concorrentes não precisam de lock.
type Store struct {
	path string

	once    sync.Once
	dataset *domain.Dataset
	loadErr error
}

func NewStore(cfg config.Dataset) *Store {
	return &Store{
		path: cfg.Path,
	}
}

// Dataset retorna o dataset em memória, carregando o arquivo na primeira
// chamada. Um erro de carga também é memorizado: não há retry, a falha é
// fatal para o processo (tratada no boot).
func (s *Store) Dataset() (*domain.Dataset, error) {
	s.once.Do(func() {
		s.dataset, s.loadErr = Load(s.path)
	})

	return s.dataset, s.loadErr
}

// Stats resume o dataset carregado para o healthcheck
func (s *Store) Stats() (*domain.DatasetStats, error) {
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}

	return &domain.DatasetStats{
		Rows:     ds.Len(),
		MinDate:  ds.MinDate,
		MaxDate:  ds.MaxDate,
		Source:   ds.Source,
		LoadedAt: ds.LoadedAt,
	}, nil
}
