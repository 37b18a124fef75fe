package resources

// Registry lists every resource screen the console knows, keyed by the
// name used on the command line (which matches the REST path segment).
func Registry() map[string]Runner {
	runners := []Runner{
		BankAccounts.Runner(),
		Contracts.Runner(),
		CostCalculations.Runner(),
		Drivers.Runner(),
		Equipments.Runner(),
		Rates.Runner(),
		Availabilities.Runner(),
		Sites.Runner(),
		Surcharges.Runner(),
		Vehicles.Runner(),
	}
	registry := make(map[string]Runner, len(runners))
	for _, runner := range runners {
		registry[runner.Name()] = runner
	}
	return registry
}
