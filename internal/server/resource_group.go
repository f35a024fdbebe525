package server

import (
	"errors"
	"io"
	"slices"

	"go.uber.org/zap"
)

// ResourceGroup закрывает зарегистрированные ресурсы при остановке сервера.
type ResourceGroup struct {
	closers []io.Closer
	log     *zap.Logger
}

func NewResourceGroup(log *zap.Logger) *ResourceGroup {
	return &ResourceGroup{
		closers: []io.Closer{},
		log:     log,
	}
}

func (rg *ResourceGroup) Register(c io.Closer) {
	rg.closers = append(rg.closers, c)
}

// CloseAll закрывает ресурсы в обратном порядке регистрации.
// Ошибка одного ресурса не мешает закрыть остальные; все ошибки объединяются.
func (rg *ResourceGroup) CloseAll() error {
	var errs []error
	for i, closer := range slices.Backward(rg.closers) {
		if err := closer.Close(); err != nil {
			rg.log.Error("resource close failed",
				zap.Int("resource_index", i),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	rg.closers = rg.closers[:0]

	return errors.Join(errs...)
}
