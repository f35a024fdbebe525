package observers

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/kazakovdmitriy/go-idioms/internal/model"
	"github.com/kazakovdmitriy/go-idioms/pkg/objpool"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrObserverClosed = errors.New("observer is closed")

// maxPooledBuffer - буферы больше этого размера не возвращаются в пул.
const maxPooledBuffer = 64 << 10

var bufferPool = objpool.New(
	func() *bytes.Buffer { return &bytes.Buffer{} },
	objpool.WithKeep(func(b *bytes.Buffer) bool { return b.Cap() <= maxPooledBuffer }),
)

// FileObserver дописывает каждое событие отдельной JSON-строкой в файл аудита.
type FileObserver struct {
	file     *os.File
	filePath string
	log      *zap.Logger
	mu       sync.Mutex
}

func NewFileObserver(filePath string, log *zap.Logger) (*FileObserver, error) {
	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return &FileObserver{
		file:     file,
		filePath: filePath,
		log:      log,
	}, nil
}

// Close закрывает файл при завершении работы
func (f *FileObserver) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return nil
	}

	if err := f.file.Sync(); err != nil {
		f.log.Warn("Sync failed on close", zap.Error(err))
	}

	if err := f.file.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}

	f.file = nil
	f.log.Info("File observer closed", zap.String("path", f.filePath))
	return nil
}

func (f *FileObserver) Update(eventType string, data map[string]any) error {
	record := model.NewAuditRecord(eventType, data)

	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	// Encode дописывает перевод строки, получается формат JSON Lines.
	if err := json.NewEncoder(buf).Encode(record); err != nil {
		return fmt.Errorf("marshal audit record: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.file == nil {
		return ErrObserverClosed
	}

	if _, err := f.file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write audit record: %w", err)
	}

	f.log.Debug("Audit record written", zap.String("id", record.ID), zap.String("event_type", eventType))
	return nil
}
