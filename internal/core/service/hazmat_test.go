package service

import "testing"

func TestHazmat_TunnelRestrictedClasses(t *testing.T) {
	router := NewHazmatRouter()

	restricted := []string{"1.1", "1.2", "1.3", "2.1", "2.3", "3", "5.2", "7"}
	for _, class := range restricted {
		if advice := router.Advise(class); !advice.AvoidTunnels {
			t.Errorf("class %s must avoid tunnels", class)
		}
	}

	unrestricted := []string{"8", "9", "4.1"}
	for _, class := range unrestricted {
		if advice := router.Advise(class); advice.AvoidTunnels {
			t.Errorf("class %s has no tunnel restriction", class)
		}
	}
}

func TestHazmat_WarningsCarried(t *testing.T) {
	advice := NewHazmatRouter().Advise("7")
	if advice.HazardClass != "7" {
		t.Errorf("class echoed = %q", advice.HazardClass)
	}
	if len(advice.Warnings) == 0 {
		t.Error("expected warnings for radioactive loads")
	}
}

func TestHazmat_UnknownClass(t *testing.T) {
	advice := NewHazmatRouter().Advise("99")
	if advice.AvoidTunnels || len(advice.Warnings) != 0 {
		t.Errorf("unknown class must return empty advice, got %+v", advice)
	}
}

func TestHazmat_TrimsInput(t *testing.T) {
	if advice := NewHazmatRouter().Advise(" 3 "); !advice.AvoidTunnels {
		t.Error("class lookup must tolerate whitespace")
	}
}
