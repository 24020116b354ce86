package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"
)

// ServiceRegistry announces this instance to the service mesh. The health
// check URL points the registry back at our /health endpoint.
type ServiceRegistry interface {
	Register(ctx context.Context) error
	Deregister(ctx context.Context) error
}

type registryCheck struct {
	HTTP     string `json:"HTTP"`
	Interval string `json:"Interval"`
	Timeout  string `json:"Timeout"`
}

type registryService struct {
	ID      string        `json:"ID"`
	Name    string        `json:"Name"`
	Address string        `json:"Address"`
	Port    int           `json:"Port"`
	Check   registryCheck `json:"Check"`
}

type HTTPServiceRegistry struct {
	client  *http.Client
	address string
	service registryService
}

func NewServiceRegistry(cfg *Config) ServiceRegistry {
	if cfg.RegistryAddress == "" {
		log.Println("No registry address configured, skipping service registration")
		return &NoopServiceRegistry{}
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		log.Fatalf("Invalid PORT %q: %v", cfg.Port, err)
	}

	return &HTTPServiceRegistry{
		client:  &http.Client{Timeout: 5 * time.Second},
		address: cfg.RegistryAddress,
		service: registryService{
			ID:      cfg.ServiceID,
			Name:    cfg.ServiceName,
			Address: cfg.ServiceAddress,
			Port:    port,
			Check: registryCheck{
				HTTP:     fmt.Sprintf("http://%s:%d/health", cfg.ServiceAddress, port),
				Interval: "10s",
				Timeout:  "3s",
			},
		},
	}
}

func (r *HTTPServiceRegistry) Register(ctx context.Context) error {
	body, err := json.Marshal(r.service)
	if err != nil {
		return err
	}

	url := r.address + "/v1/agent/service/register"
	return r.put(ctx, url, body)
}

func (r *HTTPServiceRegistry) Deregister(ctx context.Context) error {
	url := r.address + "/v1/agent/service/deregister/" + r.service.ID
	return r.put(ctx, url, nil)
}

func (r *HTTPServiceRegistry) put(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("registry returned status %d for %s", resp.StatusCode, url)
	}
	return nil
}

// NoopServiceRegistry is used when no registry is configured, e.g. in local
// development and tests.
type NoopServiceRegistry struct{}

func (r *NoopServiceRegistry) Register(ctx context.Context) error   { return nil }
func (r *NoopServiceRegistry) Deregister(ctx context.Context) error { return nil }
