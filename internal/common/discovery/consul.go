package discovery

import (
	"fmt"
	"time"

	"github.com/hashicorp/consul/api"
	"google.golang.org/grpc/resolver"
)

const consulScheme = "consul"

// NewConsulClient 创建Consul客户端
func NewConsulClient(host string, port int) (*api.Client, error) {
	config := api.DefaultConfig()
	config.Address = fmt.Sprintf("%s:%d", host, port)
	return api.NewClient(config)
}

// GRPCTarget 返回经由 consul resolver 的 grpc dial target。
func GRPCTarget(service string) string {
	return fmt.Sprintf("%s:///%s", consulScheme, service)
}

// ResolveService 一次性解析：返回 service 当前健康实例的 host:port 列表。
func ResolveService(client *api.Client, service string) ([]string, error) {
	entries, _, err := client.Health().Service(service, "", true, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service %s: %w", service, err)
	}
	addrs := make([]string, 0, len(entries))
	for _, e := range entries {
		addrs = append(addrs, fmt.Sprintf("%s:%d", e.Service.Address, e.Service.Port))
	}
	return addrs, nil
}

// ResolverBuilder 把 consul 健康实例列表接入 gRPC 的 resolver 机制。
// target 形如 consul:///job-service。
type ResolverBuilder struct {
	client   *api.Client
	interval time.Duration
}

// NewResolverBuilder 创建并注册 consul resolver builder。
func NewResolverBuilder(client *api.Client) *ResolverBuilder {
	b := &ResolverBuilder{
		client:   client,
		interval: 5 * time.Second,
	}
	resolver.Register(b)
	return b
}

func (b *ResolverBuilder) Scheme() string { return consulScheme }

// Build 为目标服务创建 watcher，周期性刷新实例列表。
func (b *ResolverBuilder) Build(target resolver.Target, cc resolver.ClientConn, _ resolver.BuildOptions) (resolver.Resolver, error) {
	w := &consulWatcher{
		client:   b.client,
		service:  target.Endpoint(),
		cc:       cc,
		interval: b.interval,
		stop:     make(chan struct{}),
	}
	w.update()
	go w.watch()
	return w, nil
}

type consulWatcher struct {
	client    *api.Client
	service   string
	cc        resolver.ClientConn
	interval  time.Duration
	stop      chan struct{}
	lastIndex uint64
}

func (w *consulWatcher) watch() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.update()
		}
	}
}

func (w *consulWatcher) update() {
	entries, meta, err := w.client.Health().Service(w.service, "", true, &api.QueryOptions{
		WaitIndex: w.lastIndex,
	})
	if err != nil {
		return
	}
	w.lastIndex = meta.LastIndex

	addrs := make([]resolver.Address, 0, len(entries))
	for _, e := range entries {
		addrs = append(addrs, resolver.Address{
			Addr: fmt.Sprintf("%s:%d", e.Service.Address, e.Service.Port),
		})
	}
	if len(addrs) > 0 {
		_ = w.cc.UpdateState(resolver.State{Addresses: addrs})
	}
}

func (w *consulWatcher) ResolveNow(resolver.ResolveNowOptions) {}

func (w *consulWatcher) Close() { close(w.stop) }

// ServiceRegistry Consul服务注册
type ServiceRegistry struct {
	client    *api.Client
	serviceID string
	service   string
	address   string
	port      int
	tags      []string
	check     *api.AgentServiceCheck
}

// NewServiceRegistry 创建服务注册器（gRPC 健康检查探测）
func NewServiceRegistry(client *api.Client, serviceID, service, address string, port int, tags []string) *ServiceRegistry {
	return &ServiceRegistry{
		client:    client,
		serviceID: serviceID,
		service:   service,
		address:   address,
		port:      port,
		tags:      tags,
		check: &api.AgentServiceCheck{
			GRPC:                           fmt.Sprintf("%s:%d", address, port),
			Interval:                       "10s",
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: "30s",
		},
	}
}

// Register 注册服务
func (r *ServiceRegistry) Register() error {
	registration := &api.AgentServiceRegistration{
		ID:      r.serviceID,
		Name:    r.service,
		Tags:    r.tags,
		Address: r.address,
		Port:    r.port,
		Check:   r.check,
	}
	return r.client.Agent().ServiceRegister(registration)
}

// Deregister 注销服务
func (r *ServiceRegistry) Deregister() error {
	return r.client.Agent().ServiceDeregister(r.serviceID)
}
