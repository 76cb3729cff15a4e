package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-registry-backend/internal/domains/owner"
)

// fakeRepo is an in-memory owner.Repository used to exercise the service
// without a database.
type fakeRepo struct {
	nextID int64
	byID   map[int64]owner.Owner
	order  []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[int64]owner.Owner{}}
}

func (r *fakeRepo) Create(ctx context.Context, o *owner.Owner) (*owner.Owner, error) {
	for _, existing := range r.byID {
		if existing.Email == o.Email {
			return nil, owner.ErrEmailAlreadyExists
		}
	}

	r.nextID++
	o.ID = r.nextID
	r.byID[o.ID] = *o
	r.order = append(r.order, o.ID)
	return o, nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id int64) (*owner.Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, owner.ErrOwnerNotFound
	}
	return &o, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]owner.Owner, error) {
	out := make([]owner.Owner, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *fakeRepo) UpdateEmail(ctx context.Context, id int64, email string) (*owner.Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, owner.ErrOwnerNotFound
	}

	for otherID, existing := range r.byID {
		if otherID != id && existing.Email == email {
			return nil, owner.ErrEmailAlreadyExists
		}
	}

	o.Email = email
	r.byID[id] = o
	return &o, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return owner.ErrOwnerNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func TestOwnerService_CreateThenGet(t *testing.T) {
	svc := NewOwnerService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.OwnerRequest{Email: "alex@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", got.Email)
}

func TestOwnerService_CreateDuplicateEmail(t *testing.T) {
	svc := NewOwnerService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, owner.OwnerRequest{Email: "a@b.com"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, owner.OwnerRequest{Email: "a@b.com"})
	assert.ErrorIs(t, err, owner.ErrEmailAlreadyExists)
}

func TestOwnerService_CreateInvalidEmailNoWrite(t *testing.T) {
	repo := newFakeRepo()
	svc := NewOwnerService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner.OwnerRequest{Email: "not-an-email"})
	require.Error(t, err)

	var verrs validation.Errors
	assert.ErrorAs(t, err, &verrs)

	// Validation failed before any store call.
	assert.Empty(t, repo.byID)
}

func TestOwnerService_UpdateMissingLeavesStoreUnchanged(t *testing.T) {
	repo := newFakeRepo()
	svc := NewOwnerService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, owner.OwnerRequest{Email: "a@b.com"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, 99, owner.OwnerRequest{Email: "new@b.com"})
	assert.ErrorIs(t, err, owner.ErrOwnerNotFound)

	got, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got.Email)
}

func TestOwnerService_UpdateReplacesEmail(t *testing.T) {
	svc := NewOwnerService(newFakeRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, owner.OwnerRequest{Email: "old@b.com"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, owner.OwnerRequest{Email: "New@B.com"})
	require.NoError(t, err)
	assert.Equal(t, "new@b.com", updated.Email)
}

func TestOwnerService_DeleteSemantics(t *testing.T) {
	svc := NewOwnerService(newFakeRepo())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, 42), owner.ErrOwnerNotFound)

	created, err := svc.Create(ctx, owner.OwnerRequest{Email: "a@b.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, owner.ErrOwnerNotFound)
}

func TestOwnerService_ListInsertionOrder(t *testing.T) {
	svc := NewOwnerService(newFakeRepo())
	ctx := context.Background()

	for _, email := range []string{"a@b.com", "b@b.com", "c@b.com"} {
		_, err := svc.Create(ctx, owner.OwnerRequest{Email: email})
		require.NoError(t, err)
	}

	owners, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, owners, 3)
	assert.Equal(t, "a@b.com", owners[0].Email)
	assert.Equal(t, "c@b.com", owners[2].Email)
}
