// Package objpool - типизированная обёртка над sync.Pool.
package objpool

import "sync"

// Resettable - объект, который можно очистить перед повторным использованием.
type Resettable interface {
	Reset()
}

// Pool - generic пул объектов.
type Pool[T Resettable] struct {
	internal sync.Pool
	keep     func(T) bool
}

// Option настраивает Pool.
type Option[T Resettable] func(*Pool[T])

// WithKeep задаёт условие возврата объекта в пул.
// Объекты, для которых keep возвращает false, отдаются сборщику мусора.
func WithKeep[T Resettable](keep func(T) bool) Option[T] {
	return func(p *Pool[T]) {
		p.keep = keep
	}
}

// New создаёт пул.
func New[T Resettable](newFunc func() T, opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{internal: sync.Pool{
		New: func() any { return newFunc() },
	}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

func (p *Pool[T]) Put(obj T) {
	if p.keep != nil && !p.keep(obj) {
		return
	}
	obj.Reset()
	p.internal.Put(obj)
}
