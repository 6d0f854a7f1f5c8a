package cmd

// Config carries the environment-driven settings of the service.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	IntakeURL            string
	ObjectStoreURL       string
	ObjectStoreAuthToken string

	DispatchWorkers int
}
