package dashboard

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"dog-breeds-dashboard/internal/domain/breeds"
)

// -------------------------
// Repo y fuente de prueba
// -------------------------

type testRepo struct {
	mu   sync.Mutex
	byID map[string]View
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]View{}}
}

func (r *testRepo) Create(ctx context.Context, v View) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[v.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) Update(ctx context.Context, v View) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[v.ID]; !ok {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (View, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.byID[id]
	if !ok {
		return View{}, ErrNotFound
	}
	return v, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// testSource responde con lo que devuelva next(); permite bloquear un fetch.
type testSource struct {
	mu   sync.Mutex
	next func(ctx context.Context) ([]breeds.Breed, error)
}

func (s *testSource) ListBreeds(ctx context.Context) ([]breeds.Breed, error) {
	s.mu.Lock()
	fn := s.next
	s.mu.Unlock()
	return fn(ctx)
}

func (s *testSource) GetBreed(ctx context.Context, id string) (breeds.Breed, error) {
	return breeds.Breed{}, breeds.ErrNotFound
}

func (s *testSource) set(fn func(ctx context.Context) ([]breeds.Breed, error)) {
	s.mu.Lock()
	s.next = fn
	s.mu.Unlock()
}

func returning(items []breeds.Breed, err error) func(context.Context) ([]breeds.Breed, error) {
	return func(context.Context) ([]breeds.Breed, error) { return items, err }
}

func sampleBreeds() []breeds.Breed {
	return []breeds.Breed{
		{ID: "1", Name: "Pug", BreedGroup: "Toy", LifeSpan: "10-12", HeightMetric: "25 - 30", WeightMetric: "6 - 8"},
		{ID: "2", Name: "Husky", BreedGroup: "Working", LifeSpan: "14-16", HeightMetric: "51 - 60", WeightMetric: "16 - 27"},
		{ID: "3", Name: "Chihuahua", BreedGroup: "Toy", LifeSpan: "12 - 20 years", HeightMetric: "15 - 23", WeightMetric: "?"},
	}
}

func newTestService(src *testSource) (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, src)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	return svc, repo
}

func TestService_Open_LoadsRecords(t *testing.T) {
	src := &testSource{}
	src.set(returning(sampleBreeds(), nil))
	svc, _ := newTestService(src)

	v, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.ID == "" {
		t.Fatalf("expected id")
	}
	if v.Status != StatusReady || v.Generation != 1 || v.LoadedAt == nil {
		t.Fatalf("unexpected view: %+v", v)
	}
	if v.Group != breeds.GroupAll || v.Search != "" {
		t.Fatalf("unexpected default filter: %q / %q", v.Search, v.Group)
	}
	if len(v.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(v.Records))
	}
}

func TestService_Open_FetchErrorLeavesErrorStatus(t *testing.T) {
	src := &testSource{}
	src.set(returning(nil, breeds.ErrUpstream))
	svc, _ := newTestService(src)

	v, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("fetch failure must not fail Open, got %v", err)
	}
	if v.Status != StatusError || v.Error == "" {
		t.Fatalf("expected error status, got %+v", v)
	}
	if len(v.Records) != 0 || v.LoadedAt != nil {
		t.Fatalf("expected no records, got %+v", v)
	}

	// un reload exitoso limpia el error
	src.set(returning(sampleBreeds(), nil))
	v, err = svc.Load(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Status != StatusReady || v.Error != "" || v.Generation != 2 {
		t.Fatalf("unexpected view after reload: %+v", v)
	}
}

func TestService_Load_FailureKeepsPreviousRecords(t *testing.T) {
	src := &testSource{}
	src.set(returning(sampleBreeds(), nil))
	svc, _ := newTestService(src)

	v, _ := svc.Open(context.Background())

	src.set(returning(nil, breeds.ErrUpstream))
	v, err := svc.Load(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Status != StatusError || len(v.Records) != 3 {
		t.Fatalf("expected error status with previous records, got status=%s records=%d", v.Status, len(v.Records))
	}
}

func TestService_Load_StaleFetchIsDiscarded(t *testing.T) {
	src := &testSource{}
	src.set(returning(sampleBreeds(), nil))
	svc, repo := newTestService(src)

	v, err := svc.Open(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	started := make(chan struct{})
	release := make(chan struct{})
	slow := []breeds.Breed{{ID: "9", Name: "Slow", BreedGroup: "Old"}}
	src.set(func(context.Context) ([]breeds.Breed, error) {
		close(started)
		<-release
		return slow, nil
	})

	type result struct {
		v   View
		err error
	}
	done := make(chan result, 1)
	go func() {
		got, err := svc.Load(context.Background(), v.ID)
		done <- result{got, err}
	}()
	<-started

	// un fetch más nuevo resuelve primero
	fresh := []breeds.Breed{{ID: "5", Name: "Fresh", BreedGroup: "New"}}
	src.set(returning(fresh, nil))
	latest, err := svc.Load(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if latest.Generation != 3 {
		t.Fatalf("expected generation 3, got %d", latest.Generation)
	}

	close(release)
	res := <-done
	if !errors.Is(res.err, ErrStaleFetch) {
		t.Fatalf("expected ErrStaleFetch, got %v", res.err)
	}

	stored, _ := repo.GetByID(context.Background(), v.ID)
	if !reflect.DeepEqual(stored.Records, fresh) || stored.Generation != 3 || stored.Status != StatusReady {
		t.Fatalf("stale response must not overwrite newer state: %+v", stored)
	}
}

func TestService_Load_CanceledRequestStillCommits(t *testing.T) {
	src := &testSource{}
	src.set(returning(nil, nil))
	svc, repo := newTestService(src)
	v, _ := svc.Open(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	src.set(func(context.Context) ([]breeds.Breed, error) {
		cancel()
		return nil, context.Canceled
	})

	got, err := svc.Load(ctx, v.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	stored, _ := repo.GetByID(context.Background(), v.ID)
	if got.Status != StatusError || stored.Status != StatusError {
		t.Fatalf("expected error status stored, got %s / %s", got.Status, stored.Status)
	}
}

func TestService_SetFilterAndBoard(t *testing.T) {
	src := &testSource{}
	src.set(returning(sampleBreeds(), nil))
	svc, _ := newTestService(src)
	ctx := context.Background()

	v, _ := svc.Open(ctx)

	v, err := svc.SetFilter(ctx, v.ID, "hu", "  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if v.Group != breeds.GroupAll || v.Search != "hu" {
		t.Fatalf("unexpected filter: %q / %q", v.Search, v.Group)
	}

	b, err := svc.Board(ctx, v.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(b.Breeds) != 2 { // Husky, Chihuahua
		t.Fatalf("expected 2 breeds, got %+v", b.Breeds)
	}
	if b.Summary.TotalBreeds != 2 || b.Summary.AverageLifespan != 15.5 {
		t.Fatalf("unexpected summary: %+v", b.Summary)
	}
	if want := []string{breeds.GroupAll, "Toy", "Working"}; !reflect.DeepEqual(b.Groups, want) {
		t.Fatalf("groups got %v want %v", b.Groups, want)
	}
	// Chihuahua no tiene peso parseable
	if len(b.HeightWeight) != 1 || b.HeightWeight[0].Name != "Husky" {
		t.Fatalf("unexpected scatter points: %+v", b.HeightWeight)
	}

	if _, err := svc.SetFilter(ctx, v.ID, "", "Toy"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, _ = svc.Board(ctx, v.ID)
	if want := []breeds.GroupCount{{Group: "Toy", Count: 2}}; !reflect.DeepEqual(b.GroupCounts, want) {
		t.Fatalf("charts must follow the filter, got %+v", b.GroupCounts)
	}
}

func TestService_Close(t *testing.T) {
	src := &testSource{}
	src.set(returning(sampleBreeds(), nil))
	svc, _ := newTestService(src)
	ctx := context.Background()

	v, _ := svc.Open(ctx)
	if err := svc.Close(ctx, v.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := svc.Get(ctx, v.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after close, got %v", err)
	}
	if err := svc.Close(ctx, v.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound closing twice, got %v", err)
	}
}

func TestService_UnknownOrBlankView(t *testing.T) {
	src := &testSource{}
	src.set(returning(sampleBreeds(), nil))
	svc, _ := newTestService(src)
	ctx := context.Background()

	for _, id := range []string{"", "  ", "missing"} {
		if _, err := svc.Load(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Load(%q): expected ErrNotFound, got %v", id, err)
		}
		if _, err := svc.SetFilter(ctx, id, "", ""); !errors.Is(err, ErrNotFound) {
			t.Fatalf("SetFilter(%q): expected ErrNotFound, got %v", id, err)
		}
		if _, err := svc.Board(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Board(%q): expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestBuildBoard_IsPure(t *testing.T) {
	v := View{ID: "v1", Search: "u", Group: breeds.GroupAll, Records: sampleBreeds(), Status: StatusReady}
	if a, b := BuildBoard(v), BuildBoard(v); !reflect.DeepEqual(a, b) {
		t.Fatalf("BuildBoard not deterministic")
	}
}

func TestChartAdapters(t *testing.T) {
	bars := GroupBars([]breeds.GroupCount{{Group: "Toy", Count: 2}})
	if len(bars) != 1 || bars[0].Label != "Toy" || bars[0].Value != 2 {
		t.Fatalf("unexpected bars: %+v", bars)
	}

	pts := HeightWeightPoints([]breeds.HeightWeight{{Name: "A", Height: 50, Weight: 20}})
	if len(pts) != 1 || pts[0].X != 20 || pts[0].Y != 50 {
		t.Fatalf("expected weight on X and height on Y, got %+v", pts)
	}
}
