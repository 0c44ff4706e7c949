package models

// EmailConfig holds the registration mail templates of a study.
// Templates may contain the placeholders %apk_url%, %backend_url%,
// %username%, %password% and %nopassword:{text}%.
type EmailConfig struct {
	ParticipantSubject      LocalizedStr `json:"participant_subject" yaml:"participant_subject"`
	ParticipantBodyTemplate LocalizedStr `json:"participant_body_template" yaml:"participant_body_template"`
	NurseSubject            LocalizedStr `json:"nurse_subject" yaml:"nurse_subject"`
	NurseBodyTemplate       LocalizedStr `json:"nurse_body_template" yaml:"nurse_body_template"`
	ScientistSubject        LocalizedStr `json:"scientist_subject" yaml:"scientist_subject"`
	ScientistBodyTemplate   LocalizedStr `json:"scientist_body_template" yaml:"scientist_body_template"`
}

// GarminDeviceConfig configures data collection with a Garmin wearable.
// Intervals are in seconds unless the name says otherwise.
type GarminDeviceConfig struct {
	Active                        bool   `json:"active" yaml:"active"`
	HealthSDKLicenseKey           string `json:"health_sdk_license_key" yaml:"health_sdk_license_key"`
	SensorAutosyncIntervalMinutes int    `json:"sensor_autosync_interval_minutes" yaml:"sensor_autosync_interval_minutes"`
	SensorSyncMaxAgeMinutes       int    `json:"sensor_sync_max_age_minutes" yaml:"sensor_sync_max_age_minutes"`
	ZeroCrossingsEnabled          bool   `json:"zero_crossings_enabled" yaml:"zero_crossings_enabled"`
	ZeroCrossingsInterval         int    `json:"zero_crossings_interval" yaml:"zero_crossings_interval"`
	StepsEnabled                  bool   `json:"steps_enabled" yaml:"steps_enabled"`
	StressEnabled                 bool   `json:"stress_enabled" yaml:"stress_enabled"`
	StressInterval                int    `json:"stress_interval" yaml:"stress_interval"`
	HeartRateEnabled              bool   `json:"heart_rate_enabled" yaml:"heart_rate_enabled"`
	HeartRateInterval             int    `json:"heart_rate_interval" yaml:"heart_rate_interval"`
	BBIEnabled                    bool   `json:"bbi_enabled" yaml:"bbi_enabled"`
	SpO2Enabled                   bool   `json:"spo2_enabled" yaml:"spo2_enabled"`
	SpO2Interval                  int    `json:"spo2_interval" yaml:"spo2_interval"`
	RespirationEnabled            bool   `json:"respiration_enabled" yaml:"respiration_enabled"`
	RespirationInterval           int    `json:"respiration_interval" yaml:"respiration_interval"`
	RawAccelerometerEnabled       bool   `json:"raw_accelerometer_enabled" yaml:"raw_accelerometer_enabled"`
	RawAccelerometerInterval      int    `json:"raw_accelerometer_interval" yaml:"raw_accelerometer_interval"`
}

// CosinussDeviceConfig configures data collection with a cosinuss One
// in-ear sensor. All times use the HH:MM format.
type CosinussDeviceConfig struct {
	Active              bool   `json:"active" yaml:"active"`
	WearingTimeBegin    string `json:"wearing_time_begin" yaml:"wearing_time_begin"`
	WearingTimeEnd      string `json:"wearing_time_end" yaml:"wearing_time_end"`
	WearingTimeDuration string `json:"wearing_time_duration" yaml:"wearing_time_duration"`
	ReminderTime        string `json:"reminder_time" yaml:"reminder_time"`
}

// Study holds the study-wide parameters.
type Study struct {
	ID                 string       `json:"id" yaml:"id"`
	Title              LocalizedStr `json:"title" yaml:"title"`
	DefaultRuntimeDays int          `json:"default_runtime_days" yaml:"default_runtime_days"`

	// InitialFoodEnum is the first food screen of the food recording flow.
	InitialFoodEnum *string `json:"initial_food_enum,omitempty" yaml:"initial_food_enum,omitempty"`

	// StaticDataForm collects the static participant data.
	StaticDataForm *string `json:"static_data_form,omitempty" yaml:"static_data_form,omitempty"`

	// UserDataForm collects the daily questions.
	UserDataForm *string `json:"user_data_form,omitempty" yaml:"user_data_form,omitempty"`

	// ReminderTime uses the HH:MM format.
	ReminderTime *string `json:"reminder_time,omitempty" yaml:"reminder_time,omitempty"`

	// ServerAutosyncInterval and ServerSyncMaxAge are in minutes.
	ServerAutosyncInterval int `json:"server_autosync_interval" yaml:"server_autosync_interval"`
	ServerSyncMaxAge       int `json:"server_sync_max_age" yaml:"server_sync_max_age"`

	EmailConfig          EmailConfig           `json:"email_config" yaml:"email_config"`
	GarminDeviceConfig   *GarminDeviceConfig   `json:"garmin_device_config,omitempty" yaml:"garmin_device_config,omitempty"`
	CosinussDeviceConfig *CosinussDeviceConfig `json:"cosinuss_device_config,omitempty" yaml:"cosinuss_device_config,omitempty"`
}

// TableName returns the name of the database table
// associated with the Study model.
func (s Study) TableName() string {
	return "studies"
}
