package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	jobpb "github.com/TowLinkDrive/TowLinkDrive/internal/api/proto/job"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/config"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/discovery"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/logger"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/middleware"
	"github.com/TowLinkDrive/TowLinkDrive/internal/evidence"
	"github.com/TowLinkDrive/TowLinkDrive/internal/signature"
	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/resolver"
)

var (
	configPath = flag.String("config", "configs/api-gateway.json", "配置文件路径")
	jobService = flag.String("job-service", "job-service", "后端作业服务在 Consul 中的名字")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 通过 Consul 解析后端 gRPC 实例
	consulClient, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port)
	if err != nil {
		log.Fatalf("failed to init consul client: %v", err)
	}
	resolver.Register(discovery.NewResolverBuilder(consulClient))

	conn, err := grpc.Dial(
		discovery.GRPCTarget(*jobService),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultServiceConfig(`{"loadBalancingConfig": [{"round_robin":{}}]}`),
	)
	if err != nil {
		log.Fatalf("failed to dial job-service: %v", err)
	}
	defer conn.Close()

	blobs := evidence.NewMemoryStore()
	gw := &gateway{
		jobs:       jobpb.NewJobServiceClient(conn),
		photos:     evidence.NewCapturer(blobs),
		signatures: signature.NewCapturer(blobs),
		log:        log,
	}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/jobs", gw.createJob).Methods(http.MethodPost)
	api.HandleFunc("/jobs", gw.listJobs).Methods(http.MethodGet)
	api.HandleFunc("/jobs/stats", gw.jobStats).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id}", gw.getJob).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{id}/dispatch", gw.dispatchJob).Methods(http.MethodPost)
	api.HandleFunc("/jobs/{id}/accept", gw.acceptJob).Methods(http.MethodPost)
	api.HandleFunc("/jobs/{id}/decline", gw.declineJob).Methods(http.MethodPost)
	api.HandleFunc("/jobs/{id}/arrive", gw.arriveJob).Methods(http.MethodPost)
	api.HandleFunc("/jobs/{id}/photo", gw.uploadPhoto).Methods(http.MethodPost)
	api.HandleFunc("/jobs/{id}/signature", gw.uploadSignature).Methods(http.MethodPost)
	api.HandleFunc("/jobs/{id}/evidence", gw.submitEvidence).Methods(http.MethodPost)
	api.HandleFunc("/jobs/{id}/complete", gw.completeDropoff).Methods(http.MethodPost)

	// 网关级限流：每秒补充 100 个令牌，峰值 200
	limiter := middleware.NewTokenBucket(200, 100)
	handler := middleware.HTTPRateLimit(limiter, r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Infof("api-gateway listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("api-gateway exited with error: %v", err)
	}
}
