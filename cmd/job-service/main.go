package main

import (
	"context"
	"flag"
	"fmt"

	jobpb "github.com/TowLinkDrive/TowLinkDrive/internal/api/proto/job"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/config"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/db"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/logger"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/server"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/tracing"
	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
	"github.com/TowLinkDrive/TowLinkDrive/internal/job/events"
	"github.com/TowLinkDrive/TowLinkDrive/internal/payment"
	"github.com/TowLinkDrive/TowLinkDrive/internal/tower"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"google.golang.org/grpc"
)

var (
	configPath = flag.String("config", "configs/job-service.json", "配置文件路径")
)

func main() {
	flag.Parse()

	// 加载配置
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	// 初始化日志
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

	// 初始化链路追踪
	tracer, closer, err := tracing.InitTracer(
		cfg.Server.Name,
		cfg.Jaeger.Endpoint,
		cfg.Jaeger.Sampler,
	)
	if err != nil {
		log.Warnf("failed to init tracer: %v", err)
	} else {
		defer closer.Close()
	}
	_ = tracer

	// 初始化数据库
	gormDB, err := db.NewMySQL(
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Database,
		cfg.Database.MaxIdle,
		cfg.Database.MaxOpen,
	)
	if err != nil {
		log.Fatalf("failed to init mysql: %v", err)
	}
	if err := gormDB.AutoMigrate(&job.Job{}, &tower.Tower{}); err != nil {
		log.Fatalf("failed to migrate mysql schema: %v", err)
	}

	// 组装作业服务：MySQL 存储 + 熔断保护的支付网关
	store := job.NewRepo(gormDB)
	payments := payment.NewService(
		payment.NewDemoGateway(),
		cfg.Payment.MaxFailures,
		cfg.Payment.ResetTimeout(),
		log,
	)
	svc := job.NewService(store, payments, log)
	svc.SetAuthorizeTimeout(cfg.Payment.AuthorizeTimeout())

	// Kinesis 流转事件出口（可选：未配置 stream 则跳过）
	if cfg.Kinesis.StreamName != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(cfg.Kinesis.Region),
		)
		if err != nil {
			log.Warnf("failed to load aws config, job events disabled: %v", err)
		} else {
			svc.SetEventSink(events.NewStreamer(kinesis.NewFromConfig(awsCfg), cfg.Kinesis.StreamName, log))
		}
	}

	// 启动统一的 gRPC 服务模板
	if err := server.RunGRPCServer(cfg, log, func(s *grpc.Server) error {
		jobpb.RegisterJobServiceServer(s, job.NewGRPCServer(svc))
		return nil
	}); err != nil {
		log.Fatalf("job-service exited with error: %v", err)
	}
}
