package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/saricare/booking-api/internal/core/domain"
	"github.com/saricare/booking-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user store with a unique email constraint
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.User
	seq       int
	findErr   error
	createErr error
	// beforeCreate runs outside the lock, letting tests line up racing inserts.
	beforeCreate func()
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.beforeCreate != nil {
		r.beforeCreate()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrDuplicateKey
		}
	}
	r.seq++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[clone.ID] = clone
	out := cloneUser(clone)
	out.PasswordHash = ""
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	out := cloneUser(u)
	out.PasswordHash = ""
	return out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	var out []*domain.User
	for _, id := range ids {
		if u, err := r.FindByID(ctx, id); err == nil {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role domain.Role) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.User
	for _, u := range r.byID {
		if u.Role == role {
			clone := cloneUser(u)
			clone.PasswordHash = ""
			out = append(out, clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) CountByRole(ctx context.Context, role domain.Role) (int64, error) {
	users, _ := r.ListByRole(ctx, role)
	return int64(len(users)), nil
}

func (r *stubUserRepo) countByEmail(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, u := range r.byID {
		if u.Email == email {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// In-memory booking store
// ---------------------------------------------------------------------------

type stubBookingRepo struct {
	byID      map[string]*domain.Booking
	seq       int
	createErr error
	saves     int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[string]*domain.Booking)}
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	clone := *b
	if b.HealthReport != nil {
		hr := *b.HealthReport
		clone.HealthReport = &hr
	}
	clone.Items = append([]domain.BookingItem(nil), b.Items...)
	return &clone
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	b.ID = fmt.Sprintf("booking-%d", r.seq)
	r.byID[b.ID] = cloneBooking(b)
	return nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *stubBookingRepo) FindByUser(_ context.Context, userID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.byID {
		if id, ok := b.User.UserID(); ok && id == userID {
			out = append(out, cloneBooking(b))
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *stubBookingRepo) List(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, cloneBooking(b))
	}
	sortNewestFirst(out)
	return out, nil
}

// Save mirrors the Mongo guard on the stored revision.
func (r *stubBookingRepo) Save(_ context.Context, b *domain.Booking, prev domain.BookingState) error {
	stored, ok := r.byID[b.ID]
	if !ok {
		return domain.ErrBookingNotFound
	}
	if stored.State() != prev {
		return fmt.Errorf("%w: booking changed concurrently", domain.ErrInvalidTransition)
	}
	r.saves++
	b.Version = prev.Version + 1
	r.byID[b.ID] = cloneBooking(b)
	return nil
}

// interleavingBookingRepo runs between once, right after the next FindByID,
// to simulate another admin writing between our load and save.
type interleavingBookingRepo struct {
	*stubBookingRepo
	between func()
}

func (r *interleavingBookingRepo) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := r.stubBookingRepo.FindByID(ctx, id)
	if fn := r.between; fn != nil {
		r.between = nil
		fn()
	}
	return b, err
}

func (r *stubBookingRepo) Count(_ context.Context, f ports.BookingFilter) (int64, error) {
	var n int64
	for _, b := range r.byID {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.PaymentStatus != "" && b.PaymentStatus != f.PaymentStatus {
			continue
		}
		n++
	}
	return n, nil
}

func sortNewestFirst(bs []*domain.Booking) {
	sort.Slice(bs, func(i, j int) bool { return bs[i].CreatedAt.After(bs[j].CreatedAt) })
}

// ---------------------------------------------------------------------------
// In-memory contact store
// ---------------------------------------------------------------------------

type stubContactRepo struct {
	byID map[string]*domain.Contact
	seq  int
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{byID: make(map[string]*domain.Contact)}
}

func (r *stubContactRepo) Create(_ context.Context, c *domain.Contact) error {
	r.seq++
	c.ID = fmt.Sprintf("contact-%d", r.seq)
	clone := *c
	r.byID[c.ID] = &clone
	return nil
}

func (r *stubContactRepo) FindByID(_ context.Context, id string) (*domain.Contact, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubContactRepo) List(_ context.Context) ([]*domain.Contact, error) {
	out := make([]*domain.Contact, 0, len(r.byID))
	for _, c := range r.byID {
		clone := *c
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubContactRepo) UpdateStatus(_ context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrContactNotFound
	}
	c.Status = status
	clone := *c
	return &clone, nil
}

func (r *stubContactRepo) Count(_ context.Context, status domain.ContactStatus) (int64, error) {
	var n int64
	for _, c := range r.byID {
		if status == "" || c.Status == status {
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Event stubs
// ---------------------------------------------------------------------------

type stubPublisher struct {
	events []domain.BookingEvent
}

func (p *stubPublisher) Publish(ev domain.BookingEvent) {
	p.events = append(p.events, ev)
}

func (p *stubPublisher) axes() []domain.EventAxis {
	out := make([]domain.EventAxis, len(p.events))
	for i, ev := range p.events {
		out[i] = ev.Axis
	}
	return out
}

type stubEventRepo struct {
	insertErr error
	inserted  []*domain.BookingEvent
}

func (r *stubEventRepo) InsertEvent(_ context.Context, e *domain.BookingEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, e)
	return nil
}

// ---------------------------------------------------------------------------
// Token stub
// ---------------------------------------------------------------------------

type stubTokens struct{}

func (stubTokens) Issue(subjectID string) (string, error) { return "token-for-" + subjectID, nil }

func (stubTokens) Verify(token string) (string, error) {
	const prefix = "token-for-"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", domain.ErrInvalidToken
	}
	return token[len(prefix):], nil
}
