package state

import (
	"context"
	"time"

	"github.com/google/uuid"

	"staffdeck/internal/model"
	"staffdeck/internal/store"
	"staffdeck/internal/util/logx"
)

// Coordinator runs the backend calls behind the operations. Each method
// blocks until the call settles and returns the completion event; the UI
// runs them off the event loop and feeds the result back through
// Store.Apply, so the list only ever changes after the backend confirmed.
type Coordinator struct {
	client  *store.Client
	timeout time.Duration
}

func NewCoordinator(client *store.Client) *Coordinator {
	return &Coordinator{client: client, timeout: 10 * time.Second}
}

func (c *Coordinator) Load(ctx context.Context) Event {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	users, err := c.client.List(ctx)
	if err != nil {
		logx.Errorf("state: load users: %v", err)
		return OpFailed{Op: OpLoad, Err: err}
	}
	logx.Infof("state: loaded %d users", len(users))
	return LoadDone{Users: users}
}

// Add assigns the record id up front so the row identity is known before
// the backend answers.
func (c *Coordinator) Add(ctx context.Context, u model.User) Event {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	created, err := c.client.Create(ctx, u)
	if err != nil {
		logx.Errorf("state: add user: %v", err)
		return OpFailed{Op: OpAdd, Err: err}
	}
	logx.Infof("state: added user %s", created.ID)
	return AddDone{User: *created}
}

func (c *Coordinator) Edit(ctx context.Context, id string, patch map[string]any) Event {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	updated, err := c.client.Update(ctx, id, patch)
	if err != nil {
		logx.Errorf("state: edit user %s: %v", id, err)
		return OpFailed{Op: OpEdit, Err: err}
	}
	logx.Infof("state: edited user %s", id)
	return EditDone{User: *updated}
}

func (c *Coordinator) Delete(ctx context.Context, id string) Event {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	removed, err := c.client.Delete(ctx, id)
	if err != nil {
		logx.Errorf("state: delete user %s: %v", id, err)
		return OpFailed{Op: OpDelete, Err: err}
	}
	logx.Infof("state: deleted user %s", removed.ID)
	return DeleteDone{ID: removed.ID}
}
