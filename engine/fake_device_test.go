package engine_test

import "context"

// readyEvent and userEvent are small concrete device.Event/device.UserEvent
// values handed back from MockContext expectations — plain data, not
// capability doubles, so there's nothing worth generating a mock for.
type readyEvent struct{}

func (readyEvent) Ready() bool                    { return true }
func (readyEvent) Wait(ctx context.Context) error { return nil }

type userEvent struct{ set bool }

func (u *userEvent) Ready() bool                    { return u.set }
func (u *userEvent) Wait(ctx context.Context) error { return nil }
func (u *userEvent) Set()                           { u.set = true }
