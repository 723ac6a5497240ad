package config

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		SessionExpiredTimeInHours  int
		LabResultMaxUploadSizeInMB int64
		LabResultNotificationQueue string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
