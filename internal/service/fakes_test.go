package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/claude-switch/internal/store"
	"github.com/MKhiriev/claude-switch/models"
)

// fakeDirectoryRepo is an in-memory store.DirectoryRepository for service
// tests.
type fakeDirectoryRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Directory
}

func newFakeDirectoryRepo() *fakeDirectoryRepo {
	return &fakeDirectoryRepo{nextID: 1, items: make(map[int64]models.Directory)}
}

func (f *fakeDirectoryRepo) Create(_ context.Context, request models.CreateDirectoryRequest) (models.Directory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.items {
		if d.Path == request.Path {
			return models.Directory{}, store.ErrPathAlreadyRegistered
		}
	}
	d := models.Directory{
		ID:        f.nextID,
		Name:      request.Name,
		Path:      request.Path,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.items[d.ID] = d
	f.nextID++
	return d, nil
}

func (f *fakeDirectoryRepo) GetAll(_ context.Context) ([]models.Directory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Directory, 0, len(f.items))
	for id := int64(1); id < f.nextID; id++ {
		if d, ok := f.items[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDirectoryRepo) GetByID(_ context.Context, id int64) (models.Directory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return models.Directory{}, store.ErrDirectoryNotFound
	}
	return d, nil
}

func (f *fakeDirectoryRepo) Update(_ context.Context, id int64, request models.UpdateDirectoryRequest) (models.Directory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[id]
	if !ok {
		return models.Directory{}, store.ErrDirectoryNotFound
	}
	if request.Name != nil {
		d.Name = *request.Name
	}
	if request.Path != nil {
		d.Path = *request.Path
	}
	if request.IsActive != nil {
		d.IsActive = *request.IsActive
	}
	d.UpdatedAt = time.Now()
	f.items[id] = d
	return d, nil
}

func (f *fakeDirectoryRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return store.ErrDirectoryNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeDirectoryRepo) SetActive(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return store.ErrDirectoryNotFound
	}
	for key, d := range f.items {
		d.IsActive = key == id
		f.items[key] = d
	}
	return nil
}

// fakeAccountRepo is an in-memory store.AccountRepository for service tests.
type fakeAccountRepo struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{nextID: 1, items: make(map[int64]models.Account)}
}

func (f *fakeAccountRepo) Create(_ context.Context, request models.CreateAccountRequest) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.items {
		if a.Name == request.Name {
			return models.Account{}, store.ErrAccountNameTaken
		}
	}
	a := models.Account{
		ID:        f.nextID,
		Name:      request.Name,
		Token:     request.Token,
		BaseURL:   request.BaseURL,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.items[a.ID] = a
	f.nextID++
	return a, nil
}

func (f *fakeAccountRepo) GetAll(_ context.Context) ([]models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Account, 0, len(f.items))
	for id := int64(1); id < f.nextID; id++ {
		if a, ok := f.items[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAccountRepo) GetByID(_ context.Context, id int64) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return models.Account{}, store.ErrAccountNotFound
	}
	return a, nil
}

func (f *fakeAccountRepo) GetActive(_ context.Context) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.items {
		if a.IsActive {
			return a, nil
		}
	}
	return models.Account{}, store.ErrNoActiveAccount
}

func (f *fakeAccountRepo) Update(_ context.Context, id int64, request models.UpdateAccountRequest) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return models.Account{}, store.ErrAccountNotFound
	}
	if request.Name != nil {
		a.Name = *request.Name
	}
	if request.Token != nil {
		a.Token = *request.Token
	}
	if request.BaseURL != nil {
		a.BaseURL = *request.BaseURL
	}
	if request.IsActive != nil {
		a.IsActive = *request.IsActive
	}
	a.UpdatedAt = time.Now()
	f.items[id] = a
	return a, nil
}

func (f *fakeAccountRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return store.ErrAccountNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeAccountRepo) SetActive(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return store.ErrAccountNotFound
	}
	for key, a := range f.items {
		a.IsActive = key == id
		f.items[key] = a
	}
	return nil
}

// fakeSyncService counts Push calls for sync job tests.
type fakeSyncService struct {
	mu     sync.Mutex
	pushes int
	err    error
}

func (f *fakeSyncService) Push(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pushes++
	return f.err
}

func (f *fakeSyncService) Pull(context.Context) error { return f.err }

func (f *fakeSyncService) Check(context.Context) error { return f.err }

func (f *fakeSyncService) pushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pushes
}
