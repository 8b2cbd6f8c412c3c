package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncEvery       Duration `json:"sync_every"`
		SyncFlex        Duration `json:"sync_flex"`
		MutationDelay   Duration `json:"mutation_delay"`
		JobTimeout      Duration `json:"job_timeout"`
		BackoffBase     Duration `json:"backoff_base"`
		BackoffCap      Duration `json:"backoff_cap"`
		MaxAttempts     int      `json:"max_attempts"`
		UploadBatchSize int      `json:"upload_batch_size"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Adapter: Adapter{
			BaseURL:        jsonCfg.Adapter.BaseURL,
			Token:          jsonCfg.Adapter.Token,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncEvery:       time.Duration(jsonCfg.Workers.SyncEvery),
			SyncFlex:        time.Duration(jsonCfg.Workers.SyncFlex),
			MutationDelay:   time.Duration(jsonCfg.Workers.MutationDelay),
			JobTimeout:      time.Duration(jsonCfg.Workers.JobTimeout),
			BackoffBase:     time.Duration(jsonCfg.Workers.BackoffBase),
			BackoffCap:      time.Duration(jsonCfg.Workers.BackoffCap),
			MaxAttempts:     jsonCfg.Workers.MaxAttempts,
			UploadBatchSize: jsonCfg.Workers.UploadBatchSize,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
