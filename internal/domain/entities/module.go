package entities

import "errors"

// ErrUnknownStatus is returned when a raw status string does not belong to the module.
var ErrUnknownStatus = errors.New("unknown status")

// Module identifies one of the five pipeline record types.
type Module string

const (
	ModuleLeads    Module = "leads"
	ModuleClients  Module = "clients"
	ModuleJobs     Module = "jobs"
	ModuleQuotes   Module = "quotes"
	ModuleInvoices Module = "invoices"
)

var modules = []Module{ModuleLeads, ModuleClients, ModuleJobs, ModuleQuotes, ModuleInvoices}

// Modules returns every known module in pipeline order.
func Modules() []Module {
	out := make([]Module, len(modules))
	copy(out, modules)
	return out
}

func ParseModule(raw string) (Module, bool) {
	for _, m := range modules {
		if string(m) == raw {
			return m, true
		}
	}
	return "", false
}

func parseStatus[S ~string](raw string, known []S) (S, error) {
	for _, s := range known {
		if string(s) == raw {
			return s, nil
		}
	}
	var zero S
	return zero, ErrUnknownStatus
}
