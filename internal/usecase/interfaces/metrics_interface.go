package interfaces

//go:generate mockgen -source=metrics_interface.go -destination=mocks/mock_metrics_interface.go -package=mock_interfaces

// IFlowMetrics receives pipeline counters. Outcome is "success", "rejected" or "error".
type IFlowMetrics interface {
	ObserveConversion(kind, outcome string)
	ObserveTransition(module, outcome string)
	ObserveSweep(module string, updated int)
}
