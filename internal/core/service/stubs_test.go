package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/salesflow/crm-api/internal/core/domain"
)

// In-memory repository stubs shared by the service tests. Each stub hands out
// copies so tests cannot mutate stored state by accident.

type stubUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user-%d", r.seq)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindConflict(_ context.Context, excludeID, username, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == excludeID {
			continue
		}
		if u.Username == username || u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubClientRepo struct {
	mu      sync.Mutex
	seq     int
	clients map[string]*domain.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[string]*domain.Client)}
}

func cloneClient(c *domain.Client) *domain.Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := cloneClient(client)
	copy.ID = fmt.Sprintf("client-%d", r.seq)
	r.clients[copy.ID] = cloneClient(copy)
	return copy, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return cloneClient(c), nil
}

func (r *stubClientRepo) List(_ context.Context, ownerID string) ([]*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Client, 0)
	for _, c := range r.clients {
		if ownerID == "" || c.OwnerID == ownerID {
			out = append(out, cloneClient(c))
		}
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, client *domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	r.clients[client.ID] = cloneClient(client)
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

func (r *stubClientRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, c := range r.clients {
		if c.OwnerID == ownerID {
			delete(r.clients, id)
			n++
		}
	}
	return n, nil
}

func (r *stubClientRepo) Count(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.clients {
		if ownerID == "" || c.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

func (r *stubClientRepo) CountByPriority(_ context.Context, ownerID string, priority domain.Priority) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.clients {
		if (ownerID == "" || c.OwnerID == ownerID) && c.Priority == priority {
			n++
		}
	}
	return n, nil
}

type stubQuotationRepo struct {
	mu         sync.Mutex
	seq        int
	quotations map[string]*domain.Quotation
}

func newStubQuotationRepo() *stubQuotationRepo {
	return &stubQuotationRepo{quotations: make(map[string]*domain.Quotation)}
}

func cloneQuotation(q *domain.Quotation) *domain.Quotation {
	if q == nil {
		return nil
	}
	clone := *q
	return &clone
}

func (r *stubQuotationRepo) Create(_ context.Context, quotation *domain.Quotation) (*domain.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := cloneQuotation(quotation)
	copy.ID = fmt.Sprintf("quotation-%d", r.seq)
	r.quotations[copy.ID] = cloneQuotation(copy)
	return copy, nil
}

func (r *stubQuotationRepo) FindByID(_ context.Context, id string) (*domain.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.quotations[id]
	if !ok {
		return nil, domain.ErrQuotationNotFound
	}
	return cloneQuotation(q), nil
}

func (r *stubQuotationRepo) List(_ context.Context, ownerID string) ([]*domain.Quotation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Quotation, 0)
	for _, q := range r.quotations {
		if ownerID == "" || q.OwnerID == ownerID {
			out = append(out, cloneQuotation(q))
		}
	}
	return out, nil
}

func (r *stubQuotationRepo) Update(_ context.Context, quotation *domain.Quotation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quotations[quotation.ID]; !ok {
		return domain.ErrQuotationNotFound
	}
	r.quotations[quotation.ID] = cloneQuotation(quotation)
	return nil
}

func (r *stubQuotationRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.quotations[id]; !ok {
		return domain.ErrQuotationNotFound
	}
	delete(r.quotations, id)
	return nil
}

func (r *stubQuotationRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, q := range r.quotations {
		if q.OwnerID == ownerID {
			delete(r.quotations, id)
			n++
		}
	}
	return n, nil
}

func (r *stubQuotationRepo) DeleteByClient(_ context.Context, clientID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, q := range r.quotations {
		if q.ClientID == clientID {
			delete(r.quotations, id)
			n++
		}
	}
	return n, nil
}

func (r *stubQuotationRepo) RefreshClientName(_ context.Context, clientID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.quotations {
		if q.ClientID == clientID {
			q.ClientName = name
		}
	}
	return nil
}

func (r *stubQuotationRepo) Count(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, q := range r.quotations {
		if ownerID == "" || q.OwnerID == ownerID {
			n++
		}
	}
	return n, nil
}

type stubReminderRepo struct {
	mu        sync.Mutex
	seq       int
	reminders map[string]*domain.Reminder
}

func newStubReminderRepo() *stubReminderRepo {
	return &stubReminderRepo{reminders: make(map[string]*domain.Reminder)}
}

func cloneReminder(rm *domain.Reminder) *domain.Reminder {
	if rm == nil {
		return nil
	}
	clone := *rm
	return &clone
}

func (r *stubReminderRepo) Create(_ context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := cloneReminder(reminder)
	copy.ID = fmt.Sprintf("reminder-%d", r.seq)
	r.reminders[copy.ID] = cloneReminder(copy)
	return copy, nil
}

func (r *stubReminderRepo) FindByID(_ context.Context, id string) (*domain.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, ok := r.reminders[id]
	if !ok {
		return nil, domain.ErrReminderNotFound
	}
	return cloneReminder(rm), nil
}

func (r *stubReminderRepo) List(_ context.Context, ownerID string) ([]*domain.Reminder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Reminder, 0)
	for _, rm := range r.reminders {
		if ownerID == "" || rm.OwnerID == ownerID {
			out = append(out, cloneReminder(rm))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RemindAt.Before(out[j].RemindAt) })
	return out, nil
}

func (r *stubReminderRepo) Update(_ context.Context, reminder *domain.Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reminders[reminder.ID]; !ok {
		return domain.ErrReminderNotFound
	}
	r.reminders[reminder.ID] = cloneReminder(reminder)
	return nil
}

func (r *stubReminderRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reminders[id]; !ok {
		return domain.ErrReminderNotFound
	}
	delete(r.reminders, id)
	return nil
}

func (r *stubReminderRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, rm := range r.reminders {
		if rm.OwnerID == ownerID {
			delete(r.reminders, id)
			n++
		}
	}
	return n, nil
}

func (r *stubReminderRepo) DeleteByClient(_ context.Context, clientID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, rm := range r.reminders {
		if rm.ClientID == clientID {
			delete(r.reminders, id)
			n++
		}
	}
	return n, nil
}

func (r *stubReminderRepo) RefreshClientName(_ context.Context, clientID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rm := range r.reminders {
		if rm.ClientID == clientID {
			rm.ClientName = name
		}
	}
	return nil
}

func (r *stubReminderRepo) CountPending(_ context.Context, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, rm := range r.reminders {
		if (ownerID == "" || rm.OwnerID == ownerID) && !rm.Completed {
			n++
		}
	}
	return n, nil
}
