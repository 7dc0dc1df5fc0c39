package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"guestlens/internal/domain/entity"
	storage "guestlens/internal/domain/repository/minio"
)

type storedObject struct {
	data        []byte
	contentType string
	modified    time.Time
}

// memStorage is an in-memory bucket implementing the storage interfaces.
type memStorage struct {
	mu       sync.Mutex
	objects  map[string]storedObject
	failPut  map[string]error
	failList map[string]error
	failGet  map[string]error
	clock    time.Time
}

func newMemStorage() *memStorage {
	return &memStorage{
		objects:  map[string]storedObject{},
		failPut:  map[string]error{},
		failList: map[string]error{},
		failGet:  map[string]error{},
		clock:    time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memStorage) add(key string, data []byte, contentType string, modified time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = storedObject{data: data, contentType: contentType, modified: modified}
}

func (m *memStorage) keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

func (m *memStorage) Put(_ context.Context, key string, body []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for prefix, err := range m.failPut {
		if strings.HasPrefix(key, prefix) {
			return err
		}
	}
	m.clock = m.clock.Add(time.Second)
	m.objects[key] = storedObject{data: append([]byte(nil), body...), contentType: contentType, modified: m.clock}

	return nil
}

func (m *memStorage) List(_ context.Context, prefix string) ([]entity.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failList[prefix]; ok {
		return nil, err
	}

	var out []entity.ObjectInfo
	for k, o := range m.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, entity.ObjectInfo{Key: k, Size: int64(len(o.data)), LastModified: o.modified,
				ContentType: o.contentType})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out, nil
}

func (m *memStorage) Stat(_ context.Context, key string) (entity.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.objects[key]
	if !ok {
		return entity.ObjectInfo{}, storage.ErrObjectNotFound
	}

	return entity.ObjectInfo{Key: key, Size: int64(len(o.data)), LastModified: o.modified,
		ContentType: o.contentType, ETag: "etag"}, nil
}

func (m *memStorage) Get(_ context.Context, key string, r *entity.ByteRange) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	if err, ok := m.failGet[key]; ok {
		return nil, err
	}
	data := o.data
	if r != nil {
		data = data[r.Start : r.End+1]
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) PresignPut(_ context.Context, key string, ttl time.Duration) (string, error) {
	return "https://storage.example/bucket/" + key + "?X-Amz-Expires=" + ttl.String(), nil
}

func (m *memStorage) PresignPost(_ context.Context, key, contentType string, maxSize int64,
	_ time.Duration,
) (string, map[string]string, error) {
	if maxSize <= 0 {
		return "", nil, errors.New("bad size")
	}

	return "https://storage.example/bucket", map[string]string{"key": key, "Content-Type": contentType}, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.UploadEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event entity.UploadEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return p.err
}
