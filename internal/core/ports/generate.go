package ports

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/JingsthonC/xertiq/internal/core/ports BatchRepository,DocumentRepository,DBTransactor,Ledger,DocumentStore,CreditAuthorizer,RootCache,AnchorLock,IdentityHasher,LeafBuilder,BatchPipeline,AnchorCoordinator,VerificationEngine,ProgressBroker,HealthChecker
