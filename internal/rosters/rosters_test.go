package rosters

import (
	"context"
	"testing"

	"github.com/emrekoca/restopos-admin/internal/api"
	pkgerrors "github.com/emrekoca/restopos-admin/pkg/errors"
)

type fakePilotAPI struct {
	created []api.PilotRecord
	updated []api.PilotRecord
	deleted []string
}

func (f *fakePilotAPI) GetPilots(context.Context) ([]api.PilotRecord, error) {
	return []api.PilotRecord{{PilotID: "pl1", Name: "Mehmet"}}, nil
}

func (f *fakePilotAPI) CreatePilot(_ context.Context, pilot api.PilotRecord) error {
	f.created = append(f.created, pilot)
	return nil
}

func (f *fakePilotAPI) UpdatePilot(_ context.Context, pilot api.PilotRecord) error {
	f.updated = append(f.updated, pilot)
	return nil
}

func (f *fakePilotAPI) DeletePilot(_ context.Context, pilotID string) error {
	f.deleted = append(f.deleted, pilotID)
	return nil
}

func validPilot() PilotInput {
	return PilotInput{
		Name:      "Mehmet",
		Phone:     "+90 555 000 0000",
		BranchID:  "branch-1",
		CompanyID: "company-1",
		Active:    true,
	}
}

func TestPilotCreateAssignsIdentity(t *testing.T) {
	fake := &fakePilotAPI{}
	manager, err := NewPilotManager(fake)
	if err != nil {
		t.Fatalf("constructing manager: %v", err)
	}

	id, err := manager.Create(context.Background(), validPilot())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated identity")
	}
	if len(fake.created) != 1 || fake.created[0].PilotID != id {
		t.Fatalf("record not sent with assigned identity: %+v", fake.created)
	}
}

func TestPilotCreateValidatesInput(t *testing.T) {
	fake := &fakePilotAPI{}
	manager, _ := NewPilotManager(fake)

	input := validPilot()
	input.Name = ""
	_, err := manager.Create(context.Background(), input)
	if err == nil {
		t.Fatal("missing name must fail validation")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(fake.created) != 0 {
		t.Fatal("invalid input must not reach the network")
	}
}

func TestPilotUpdateAndDelete(t *testing.T) {
	fake := &fakePilotAPI{}
	manager, _ := NewPilotManager(fake)
	ctx := context.Background()

	if err := manager.Update(ctx, "pl1", validPilot()); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(fake.updated) != 1 || fake.updated[0].PilotID != "pl1" {
		t.Fatalf("update not forwarded: %+v", fake.updated)
	}

	if err := manager.Update(ctx, "", validPilot()); err == nil {
		t.Fatal("update without id must fail")
	}

	if err := manager.Delete(ctx, "pl1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(fake.deleted) != 1 || fake.deleted[0] != "pl1" {
		t.Fatalf("delete not forwarded: %+v", fake.deleted)
	}
}

type fakeWaiterAPI struct {
	created []api.WaiterRecord
}

func (f *fakeWaiterAPI) GetWaiters(context.Context) ([]api.WaiterRecord, error) {
	return nil, nil
}

func (f *fakeWaiterAPI) CreateWaiter(_ context.Context, waiter api.WaiterRecord) error {
	f.created = append(f.created, waiter)
	return nil
}

func (f *fakeWaiterAPI) UpdateWaiter(context.Context, api.WaiterRecord) error { return nil }
func (f *fakeWaiterAPI) DeleteWaiter(context.Context, string) error           { return nil }

func TestWaiterPhoneIsOptional(t *testing.T) {
	fake := &fakeWaiterAPI{}
	manager, _ := NewWaiterManager(fake)

	input := WaiterInput{Name: "Ayşe", BranchID: "branch-1", CompanyID: "company-1", Active: true}
	if _, err := manager.Create(context.Background(), input); err != nil {
		t.Fatalf("waiter without phone must pass, got %v", err)
	}
	if len(fake.created) != 1 {
		t.Fatal("expected the waiter to be sent")
	}
}
