package services

// ServiceContainer bundles every service facade the handlers need.
type ServiceContainer struct {
	Category   CategorySvcFacade
	Ledger     LedgerSvcFacade
	Allocation AllocationSvcFacade
	Funding    FundingSvcFacade
	Import     ImportSvcFacade
	Reporting  ReportingSvcFacade
}
