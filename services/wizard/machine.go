package wizard

import "glowspa/models"

// StepChain returns the ordered steps of one booking flow. room-selection is
// present only for massage services; customer-details only for staff actors.
func StepChain(isMassage bool, class RoleClass) []models.WizardStep {
	chain := []models.WizardStep{models.StepServices, models.StepDateTime}
	if isMassage {
		chain = append(chain, models.StepRoom)
	}
	if class == RoleStaff {
		chain = append(chain, models.StepCustomer)
	}
	return append(chain, models.StepSummary, models.StepConfirmation)
}

// NextStep returns the step after current in the flow's chain.
func NextStep(current models.WizardStep, isMassage bool, class RoleClass) (models.WizardStep, error) {
	chain := StepChain(isMassage, class)
	for i, step := range chain {
		if step == current && i+1 < len(chain) {
			return chain[i+1], nil
		}
	}
	return "", ErrInvalidTransition
}

// PrevStep returns the step before current; it never walks forward, and from
// the first step there is nowhere to go back to.
func PrevStep(current models.WizardStep, isMassage bool, class RoleClass) (models.WizardStep, error) {
	chain := StepChain(isMassage, class)
	for i, step := range chain {
		if step == current && i > 0 {
			return chain[i-1], nil
		}
	}
	return "", ErrInvalidTransition
}

// stepInChain reports whether a flow configured by the two predicates ever
// visits the given step.
func stepInChain(step models.WizardStep, isMassage bool, class RoleClass) bool {
	for _, s := range StepChain(isMassage, class) {
		if s == step {
			return true
		}
	}
	return false
}
