// Package storage — доступ к JSON-документам на диске.
//
// Документ целиком читается при каждом обращении и целиком перезаписывается
// при изменении, кэша нет. Read-modify-write одного документа выполняется
// под мьютексом этого документа (Update), поэтому конкурентные запросы
// внутри процесса не теряют обновления друг друга.
//
// Запись идёт через временный файл и rename: читатель видит либо старую,
// либо новую версию документа, но никогда не половину.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/IvanChernomyrdin/video-playlists/internal/server/metrics"
	serr "github.com/IvanChernomyrdin/video-playlists/internal/shared/errors"
)

// Accessor читает и пишет JSON-документы.
//
// strict определяет судьбу битого или нечитаемого файла:
//   - false: документ считается пустым, в лог пишется предупреждение;
//   - true: возвращается ошибка, обёрнутая в serr.ErrStorage.
//
// Отсутствующий файл всегда считается пустым документом.
type Accessor struct {
	strict bool
	log    *zap.SugaredLogger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAccessor создаёт Accessor. log может быть nil.
func NewAccessor(strict bool, log *zap.SugaredLogger) *Accessor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Accessor{
		strict: strict,
		log:    log,
		locks:  make(map[string]*sync.Mutex),
	}
}

// lock возвращает мьютекс документа path.
func (a *Accessor) lock(path string) *sync.Mutex {
	key := filepath.Clean(path)

	a.mu.Lock()
	defer a.mu.Unlock()

	m, ok := a.locks[key]
	if !ok {
		m = &sync.Mutex{}
		a.locks[key] = m
	}
	return m
}

// Read возвращает разобранное содержимое файла path.
//
// Нет файла — нулевой документ без ошибки.
func Read[T any](a *Accessor, path string) (T, error) {
	var doc T
	start := time.Now()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			observe(path, "read", "missing", start)
			return doc, nil
		}
		return doc, a.readFailed(path, start, err)
	}

	if err := json.Unmarshal(b, &doc); err != nil {
		// частично заполненный документ не отдаём
		var zero T
		return zero, a.readFailed(path, start, err)
	}

	observe(path, "read", "ok", start)
	return doc, nil
}

// Write сериализует doc в JSON с отступом в 2 пробела и заменяет файл path целиком.
//
// Каталог и файл создаются при необходимости.
func Write[T any](a *Accessor, path string, doc T) error {
	start := time.Now()

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return a.writeFailed(path, start, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return a.writeFailed(path, start, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return a.writeFailed(path, start, err)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(b)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmpName, 0o644)
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return a.writeFailed(path, start, err)
	}

	observe(path, "write", "ok", start)
	return nil
}

// Update выполняет read-modify-write документа path под его мьютексом.
//
// fn получает свежепрочитанный документ и сообщает, изменился ли он.
// Документ записывается только если fn вернул changed=true и nil.
// Ошибка fn возвращается как есть.
func Update[T any](a *Accessor, path string, fn func(doc *T) (changed bool, err error)) error {
	m := a.lock(path)
	m.Lock()
	defer m.Unlock()

	doc, err := Read[T](a, path)
	if err != nil {
		return err
	}

	changed, err := fn(&doc)
	if err != nil || !changed {
		return err
	}

	return Write(a, path, doc)
}

func (a *Accessor) readFailed(path string, start time.Time, err error) error {
	observe(path, "read", "error", start)
	if a.strict {
		a.log.Errorf("read document %s: %v", path, err)
		return fmt.Errorf("%w: read %s: %v", serr.ErrStorage, path, err)
	}
	a.log.Warnf("read document %s: %v (treated as empty)", path, err)
	return nil
}

func (a *Accessor) writeFailed(path string, start time.Time, err error) error {
	observe(path, "write", "error", start)
	a.log.Errorf("write document %s: %v", path, err)
	return fmt.Errorf("%w: write %s: %v", serr.ErrStorage, path, err)
}

func observe(path, op, status string, start time.Time) {
	doc := filepath.Base(path)
	metrics.StorageOperationsTotal.WithLabelValues(doc, op, status).Inc()
	metrics.StorageOperationDuration.WithLabelValues(doc, op).Observe(time.Since(start).Seconds())
}
