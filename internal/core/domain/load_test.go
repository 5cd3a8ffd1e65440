package domain

import (
	"errors"
	"testing"
)

func TestCanTransitionTo_AllValidEdges(t *testing.T) {
	edges := []struct {
		from, to LoadStatus
	}{
		{StatusPosted, StatusBidding},
		{StatusPosted, StatusAssigned},
		{StatusPosted, StatusBooked},
		{StatusBidding, StatusAssigned},
		{StatusBidding, StatusBooked},
		{StatusAssigned, StatusBooked},
		{StatusBooked, StatusEnRouteToPickup},
		{StatusEnRouteToPickup, StatusApproachingPickup},
		{StatusEnRouteToPickup, StatusAtPickup},
		{StatusApproachingPickup, StatusAtPickup},
		{StatusAtPickup, StatusLoading},
		{StatusAtPickup, StatusInTransit},
		{StatusLoading, StatusLoaded},
		{StatusLoaded, StatusInTransit},
		{StatusInTransit, StatusApproachingDelivery},
		{StatusInTransit, StatusAtDelivery},
		{StatusApproachingDelivery, StatusAtDelivery},
		{StatusAtDelivery, StatusUnloading},
		{StatusAtDelivery, StatusDelivered},
		{StatusUnloading, StatusDelivered},
		{StatusDelivered, StatusCompleted},
	}

	for _, e := range edges {
		if !e.from.CanTransitionTo(e.to) {
			t.Errorf("expected %s -> %s to be valid", e.from, e.to)
		}
	}
}

func TestCanTransitionTo_CancellableBeforeDelivery(t *testing.T) {
	cancellable := []LoadStatus{
		StatusPosted, StatusBidding, StatusAssigned, StatusBooked,
		StatusEnRouteToPickup, StatusApproachingPickup, StatusAtPickup,
		StatusLoading, StatusLoaded, StatusInTransit,
		StatusApproachingDelivery, StatusAtDelivery, StatusUnloading,
	}
	for _, s := range cancellable {
		if !s.CanTransitionTo(StatusCancelled) {
			t.Errorf("expected %s -> cancelled to be valid", s)
		}
	}
	if StatusDelivered.CanTransitionTo(StatusCancelled) {
		t.Error("delivered load must not be cancellable")
	}
	if StatusCompleted.CanTransitionTo(StatusCancelled) {
		t.Error("completed load must not be cancellable")
	}
}

func TestCanTransitionTo_InvalidEdges(t *testing.T) {
	invalid := []struct {
		from, to LoadStatus
	}{
		{StatusPosted, StatusDelivered},
		{StatusBooked, StatusAtDelivery},
		{StatusDelivered, StatusInTransit},
		{StatusCompleted, StatusPosted},
		{StatusCancelled, StatusBooked},
		{StatusAtPickup, StatusAtDelivery},
	}
	for _, e := range invalid {
		if e.from.CanTransitionTo(e.to) {
			t.Errorf("expected %s -> %s to be rejected", e.from, e.to)
		}
	}
}

func TestAttemptTransition_Valid(t *testing.T) {
	next, err := AttemptTransition(StatusAtPickup, StatusInTransit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != StatusInTransit {
		t.Errorf("next = %s, want in_transit", next)
	}
}

func TestAttemptTransition_Invalid_KeepsCurrent(t *testing.T) {
	next, err := AttemptTransition(StatusPosted, StatusDelivered)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
	if next != StatusPosted {
		t.Errorf("rejected transition must return current status, got %s", next)
	}
}
