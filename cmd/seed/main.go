// seed 建立演示数据：一个运营方账号和几单处于不同阶段的作业，
// 并打印可直接用于调用 API 的 JWT。
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/TowLinkDrive/TowLinkDrive/internal/common/config"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/db"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/logger"
	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
	"github.com/TowLinkDrive/TowLinkDrive/internal/payment"
	"github.com/TowLinkDrive/TowLinkDrive/internal/tower"
)

var (
	configPath = flag.String("config", "configs/job-service.json", "配置文件路径")
	username   = flag.String("username", "demo-tower", "演示账号用户名")
	password   = flag.String("password", "demo-tower-pass", "演示账号密码")
)

func main() {
	flag.Parse()
	ctx := context.Background()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("failed to init logger: %v", err))
	}

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

	towers := tower.NewService(tower.NewRepo(gormDB), cfg.Auth)
	_, err = towers.Register(ctx, tower.RegisterInput{
		Username: *username,
		Password: *password,
		Name:     "Demo Towing",
		Company:  "Demo Towing LLC",
		Phone:    "+1-555-0100",
		Roles:    []string{"driver", "dispatcher"},
	})
	if err != nil && !errors.Is(err, tower.ErrUsernameTaken) {
		log.Fatalf("failed to register demo tower: %v", err)
	}

	login, err := towers.Login(ctx, *username, *password)
	if err != nil {
		log.Fatalf("failed to login demo tower: %v", err)
	}
	towerID := login.Tower.ID

	payments := payment.NewService(payment.NewDemoGateway(), cfg.Payment.MaxFailures, cfg.Payment.ResetTimeout(), log)
	svc := job.NewService(job.NewRepo(gormDB), payments, log)

	seedJobs(ctx, log, svc, towerID)

	fmt.Printf("tower id: %s\n", towerID)
	fmt.Printf("token: %s\n", login.Token)
	fmt.Printf("expires: %s\n", login.ExpiresAt.Format("2006-01-02 15:04:05"))
}

func seedJobs(ctx context.Context, log logger.Logger, svc *job.Service, towerID string) {
	type stage int
	const (
		stageWaiting stage = iota
		stageDispatched
		stageEnRoute
		stageTowing
		stageCompleted
	)

	seeds := []struct {
		number string
		in     job.CreateJobInput
		stage  stage
	}{
		{
			number: "TJ-001",
			in: job.CreateJobInput{
				Priority:        job.PriorityUrgent,
				CustomerName:    "Maria Gonzalez",
				CustomerPhone:   "+1-555-0142",
				VehicleMake:     "Honda",
				VehicleModel:    "Civic",
				VehicleYear:     2019,
				VehicleColor:    "Blue",
				PickupLocation:  "I-95 North, mile marker 42",
				DropoffLocation: "Al's Auto Body, 120 Main St",
				Distance:        "8.4 mi",
				EstimatedTime:   "25 min",
				EstimatedCost:   14500,
				Description:     "Blown tire, vehicle on shoulder",
				DriverName:      "Ray Thompson",
				TruckName:       "Flatbed 3",
			},
			stage: stageCompleted,
		},
		{
			number: "TJ-002",
			in: job.CreateJobInput{
				Priority:        job.PriorityHigh,
				CustomerName:    "Devon Clark",
				CustomerPhone:   "+1-555-0177",
				VehicleMake:     "Ford",
				VehicleModel:    "F-150",
				VehicleYear:     2021,
				VehicleColor:    "Black",
				PickupLocation:  "Oak St parking garage, level 2",
				DropoffLocation: "City impound lot",
				Distance:        "3.1 mi",
				EstimatedTime:   "15 min",
				EstimatedCost:   9500,
				Description:     "Illegally parked, impound requested",
				DriverName:      "Ray Thompson",
				TruckName:       "Wrecker 1",
			},
			stage: stageTowing,
		},
		{
			number: "TJ-003",
			in: job.CreateJobInput{
				Priority:       job.PriorityNormal,
				CustomerName:   "Priya Patel",
				CustomerPhone:  "+1-555-0123",
				VehicleMake:    "Toyota",
				VehicleModel:   "Camry",
				VehicleYear:    2017,
				VehicleColor:   "Silver",
				PickupLocation: "742 Evergreen Terrace",
				Distance:       "5.6 mi",
				EstimatedTime:  "20 min",
				EstimatedCost:  11000,
				Description:    "Dead battery, jump failed",
			},
			stage: stageEnRoute,
		},
		{
			number: "TJ-004",
			in: job.CreateJobInput{
				Priority:       job.PriorityNormal,
				CustomerName:   "Sam Whitfield",
				CustomerPhone:  "+1-555-0199",
				VehicleMake:    "Chevrolet",
				VehicleModel:   "Malibu",
				VehicleYear:    2015,
				VehicleColor:   "White",
				PickupLocation: "Route 9 southbound, exit 12",
				Distance:       "12.0 mi",
				EstimatedTime:  "35 min",
				EstimatedCost:  17500,
			},
			stage: stageDispatched,
		},
		{
			number: "TJ-005",
			in: job.CreateJobInput{
				Priority:       job.PriorityLow,
				CustomerName:   "Lena Fischer",
				CustomerPhone:  "+1-555-0161",
				VehicleMake:    "Subaru",
				VehicleModel:   "Outback",
				VehicleYear:    2020,
				VehicleColor:   "Green",
				PickupLocation: "Hillcrest Mall, lot C",
				Description:    "Keys locked inside, tow to dealership",
			},
			stage: stageWaiting,
		},
	}

	for _, s := range seeds {
		in := s.in
		in.JobNumber = s.number
		j, err := svc.Create(ctx, towerID, in)
		if err != nil {
			log.Warnf("seed %s: create failed (may already exist): %v", s.number, err)
			continue
		}

		if s.stage >= stageDispatched {
			if _, err := svc.Dispatch(ctx, towerID, j.ID); err != nil {
				log.Fatalf("seed %s: dispatch: %v", s.number, err)
			}
		}
		if s.stage >= stageEnRoute {
			if _, err := svc.Accept(ctx, towerID, j.ID); err != nil {
				log.Fatalf("seed %s: accept: %v", s.number, err)
			}
		}
		if s.stage >= stageTowing {
			if _, err := svc.Arrive(ctx, towerID, j.ID); err != nil {
				log.Fatalf("seed %s: arrive: %v", s.number, err)
			}
			_, err := svc.SubmitEvidence(ctx, towerID, j.ID, job.EvidenceInput{
				VIN:          "1HGBH41JXMN109186",
				LicensePlate: "8ABC123",
				PhotoRef:     fmt.Sprintf("https://storage.towlinkdrive.com/vehicle-photos/%s/seed.jpg", j.ID),
			})
			if err != nil {
				log.Fatalf("seed %s: evidence: %v", s.number, err)
			}
		}
		if s.stage >= stageCompleted {
			_, err := svc.CompleteDropoffAndPayment(ctx, towerID, j.ID, job.DropoffInput{
				DropoffNotes:           "Delivered, customer present",
				ImpoundLotSignatureRef: fmt.Sprintf("https://storage.towlinkdrive.com/signatures/%s/impound_lot-seed.png", j.ID),
				CustomerSignatureRef:   fmt.Sprintf("https://storage.towlinkdrive.com/signatures/%s/customer-seed.png", j.ID),
				Method:                 job.PaymentCash,
				Amount:                 in.EstimatedCost,
			})
			if err != nil {
				log.Fatalf("seed %s: complete: %v", s.number, err)
			}
		}
		log.Infof("seeded %s (%s)", s.number, j.ID)
	}
}
