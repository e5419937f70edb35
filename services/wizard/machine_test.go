package wizard

import (
	"errors"
	"testing"

	"glowspa/models"
)

func stepsEqual(a, b []models.WizardStep) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStepChain(t *testing.T) {
	cases := []struct {
		name      string
		isMassage bool
		class     RoleClass
		want      []models.WizardStep
	}{
		{
			name:  "customer non-massage skips room and customer steps",
			class: RoleCustomer,
			want: []models.WizardStep{
				models.StepServices, models.StepDateTime,
				models.StepSummary, models.StepConfirmation,
			},
		},
		{
			name:      "customer massage includes room step",
			isMassage: true,
			class:     RoleCustomer,
			want: []models.WizardStep{
				models.StepServices, models.StepDateTime, models.StepRoom,
				models.StepSummary, models.StepConfirmation,
			},
		},
		{
			name:  "staff non-massage includes customer step",
			class: RoleStaff,
			want: []models.WizardStep{
				models.StepServices, models.StepDateTime, models.StepCustomer,
				models.StepSummary, models.StepConfirmation,
			},
		},
		{
			name:      "staff massage includes both optional steps in order",
			isMassage: true,
			class:     RoleStaff,
			want: []models.WizardStep{
				models.StepServices, models.StepDateTime, models.StepRoom,
				models.StepCustomer, models.StepSummary, models.StepConfirmation,
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := StepChain(tc.isMassage, tc.class)
			if !stepsEqual(got, tc.want) {
				t.Fatalf("StepChain(%v, %v) = %v, want %v", tc.isMassage, tc.class, got, tc.want)
			}
		})
	}
}

func TestNextStepSkipsConditionalSteps(t *testing.T) {
	next, err := NextStep(models.StepDateTime, false, RoleCustomer)
	if err != nil {
		t.Fatalf("NextStep returned error: %v", err)
	}
	if next != models.StepSummary {
		t.Errorf("customer non-massage after datetime = %q, want %q", next, models.StepSummary)
	}

	next, err = NextStep(models.StepDateTime, true, RoleCustomer)
	if err != nil {
		t.Fatalf("NextStep returned error: %v", err)
	}
	if next != models.StepRoom {
		t.Errorf("customer massage after datetime = %q, want %q", next, models.StepRoom)
	}

	next, err = NextStep(models.StepRoom, true, RoleStaff)
	if err != nil {
		t.Fatalf("NextStep returned error: %v", err)
	}
	if next != models.StepCustomer {
		t.Errorf("staff massage after room = %q, want %q", next, models.StepCustomer)
	}
}

func TestNextStepFromTerminalStepFails(t *testing.T) {
	if _, err := NextStep(models.StepConfirmation, false, RoleCustomer); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("NextStep from confirmation = %v, want ErrInvalidTransition", err)
	}
}

func TestNextStepForStepOutsideChainFails(t *testing.T) {
	// A non-massage flow never visits room-selection.
	if _, err := NextStep(models.StepRoom, false, RoleCustomer); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("NextStep from room in non-massage flow = %v, want ErrInvalidTransition", err)
	}
}

func TestPrevStep(t *testing.T) {
	prev, err := PrevStep(models.StepSummary, true, RoleStaff)
	if err != nil {
		t.Fatalf("PrevStep returned error: %v", err)
	}
	if prev != models.StepCustomer {
		t.Errorf("staff massage before summary = %q, want %q", prev, models.StepCustomer)
	}

	prev, err = PrevStep(models.StepSummary, false, RoleCustomer)
	if err != nil {
		t.Fatalf("PrevStep returned error: %v", err)
	}
	if prev != models.StepDateTime {
		t.Errorf("customer non-massage before summary = %q, want %q", prev, models.StepDateTime)
	}

	if _, err := PrevStep(models.StepServices, false, RoleCustomer); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("PrevStep from first step = %v, want ErrInvalidTransition", err)
	}
}

func TestStepInChain(t *testing.T) {
	if stepInChain(models.StepRoom, false, RoleCustomer) {
		t.Error("room-selection should not be in a non-massage chain")
	}
	if !stepInChain(models.StepRoom, true, RoleCustomer) {
		t.Error("room-selection should be in a massage chain")
	}
	if stepInChain(models.StepCustomer, true, RoleCustomer) {
		t.Error("customer-details should not be in a customer chain")
	}
	if !stepInChain(models.StepCustomer, false, RoleStaff) {
		t.Error("customer-details should be in a staff chain")
	}
}
