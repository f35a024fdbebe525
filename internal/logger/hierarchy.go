package logger

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	RootName = "root"

	levelNotSet = math.MinInt32
)

// DefaultRootLevel - уровень корневого логгера по умолчанию.
var DefaultRootLevel = zapcore.WarnLevel

// Hierarchy - дерево именованных логгеров.
// Узел без собственного уровня наследует эффективный уровень ближайшего предка.
// Все узлы пишут в один поток в формате "time - name - LEVEL - message".
type Hierarchy struct {
	encoder zapcore.Encoder
	out     zapcore.WriteSyncer
	root    *Node
}

func NewHierarchy(out io.Writer) *Hierarchy {
	h := &Hierarchy{
		encoder: zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			NameKey:          "logger",
			MessageKey:       "msg",
			LineEnding:       zapcore.DefaultLineEnding,
			EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000"),
			EncodeDuration:   zapcore.StringDurationEncoder,
			EncodeName:       zapcore.FullNameEncoder,
			ConsoleSeparator: " - ",
		}),
		out: zapcore.Lock(zapcore.AddSync(out)),
	}
	h.root = newNode(h, RootName, nil)
	h.root.level.Store(int32(DefaultRootLevel))
	return h
}

func (h *Hierarchy) Root() *Node {
	return h.root
}

// Get возвращает узел по полному имени через точку, например "tutorial.subprocess".
// Пустое имя и "root" возвращают корень.
func (h *Hierarchy) Get(name string) *Node {
	if name == "" || name == RootName {
		return h.root
	}
	node := h.root
	for _, part := range strings.Split(name, ".") {
		node = node.Child(part)
	}
	return node
}

// Node - именованный логгер в иерархии. Реализует zapcore.LevelEnabler.
type Node struct {
	h      *Hierarchy
	name   string
	parent *Node
	level  atomic.Int32

	mu       sync.Mutex
	children map[string]*Node

	once   sync.Once
	logger *zap.Logger
}

func newNode(h *Hierarchy, name string, parent *Node) *Node {
	n := &Node{
		h:        h,
		name:     name,
		parent:   parent,
		children: make(map[string]*Node),
	}
	n.level.Store(levelNotSet)
	return n
}

func (n *Node) Name() string {
	return n.name
}

// Child возвращает дочерний узел, создавая его при первом обращении.
func (n *Node) Child(name string) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()

	if child, ok := n.children[name]; ok {
		return child
	}

	fullName := name
	if n.parent != nil {
		fullName = n.name + "." + name
	}
	child := newNode(n.h, fullName, n)
	n.children[name] = child
	return child
}

// SetLevel задаёт собственный уровень узла.
// "" и "notset" сбрасывают его, и узел снова наследует уровень предка.
// У корня сброс возвращает DefaultRootLevel.
func (n *Node) SetLevel(level string) error {
	switch strings.ToLower(level) {
	case "", "notset":
		if n.parent == nil {
			n.level.Store(int32(DefaultRootLevel))
		} else {
			n.level.Store(levelNotSet)
		}
		return nil
	case "warning":
		level = "warn"
	}

	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("set level of %s: %w", n.name, err)
	}
	n.level.Store(int32(lvl))
	return nil
}

// EffectiveLevel возвращает собственный уровень или уровень ближайшего предка.
func (n *Node) EffectiveLevel() zapcore.Level {
	for node := n; node != nil; node = node.parent {
		if lvl := node.level.Load(); lvl != levelNotSet {
			return zapcore.Level(lvl)
		}
	}
	return DefaultRootLevel
}

func (n *Node) Enabled(lvl zapcore.Level) bool {
	return lvl >= n.EffectiveLevel()
}

// Logger возвращает zap.Logger узла. Изменение уровня действует и на уже выданный логгер.
func (n *Node) Logger() *zap.Logger {
	n.once.Do(func() {
		core := nameFirstCore{zapcore.NewCore(n.h.encoder, n.h.out, n)}
		n.logger = zap.New(core).Named(n.name)
	})
	return n.logger
}

// nameFirstCore переносит уровень в начало сообщения: консольный энкодер zap
// всегда пишет уровень перед именем, а здесь имя идёт первым.
type nameFirstCore struct {
	zapcore.Core
}

func (c nameFirstCore) With(fields []zapcore.Field) zapcore.Core {
	return nameFirstCore{c.Core.With(fields)}
}

func (c nameFirstCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c nameFirstCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ent.Message = ent.Level.CapitalString() + " - " + ent.Message
	return c.Core.Write(ent, fields)
}
