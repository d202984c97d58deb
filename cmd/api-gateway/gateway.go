package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	jobpb "github.com/TowLinkDrive/TowLinkDrive/internal/api/proto/job"
	"github.com/TowLinkDrive/TowLinkDrive/internal/common/logger"
	"github.com/TowLinkDrive/TowLinkDrive/internal/evidence"
	"github.com/TowLinkDrive/TowLinkDrive/internal/job"
	"github.com/TowLinkDrive/TowLinkDrive/internal/signature"
	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const rpcTimeout = 15 * time.Second

// gateway 把 REST 请求翻译成后端 gRPC 调用；证据上传在网关侧落存储。
type gateway struct {
	jobs       jobpb.JobServiceClient
	photos     *evidence.Capturer
	signatures *signature.Capturer
	log        logger.Logger
}

// outgoing 把 Authorization 头透传给后端，由后端拦截器鉴权。
func (g *gateway) outgoing(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(r.Context(), rpcTimeout)
	if authz := r.Header.Get("Authorization"); authz != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "authorization", authz)
	}
	return ctx, cancel
}

func (g *gateway) createJob(w http.ResponseWriter, r *http.Request) {
	var req jobpb.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := g.jobs.CreateJob(ctx, &req)
	if err != nil {
		g.writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp.Job)
}

func (g *gateway) getJob(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := g.jobs.GetJob(ctx, &jobpb.GetJobRequest{Id: mux.Vars(r)["id"]})
	if err != nil {
		g.writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Job)
}

func (g *gateway) listJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &jobpb.ListJobsRequest{
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
	}
	req.Page = parseInt32(q.Get("page"))
	req.PageSize = parseInt32(q.Get("page_size"))

	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := g.jobs.ListJobs(ctx, req)
	if err != nil {
		g.writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"jobs":  resp.Jobs,
		"total": resp.Total,
	})
}

func (g *gateway) jobStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := g.jobs.GetJobStats(ctx, &jobpb.GetJobStatsRequest{})
	if err != nil {
		g.writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (g *gateway) dispatchJob(w http.ResponseWriter, r *http.Request) {
	g.action(w, r, g.jobs.DispatchJob)
}

func (g *gateway) acceptJob(w http.ResponseWriter, r *http.Request) {
	g.action(w, r, g.jobs.AcceptJob)
}

func (g *gateway) declineJob(w http.ResponseWriter, r *http.Request) {
	g.action(w, r, g.jobs.DeclineJob)
}

func (g *gateway) arriveJob(w http.ResponseWriter, r *http.Request) {
	g.action(w, r, g.jobs.ArriveJob)
}

type actionFunc func(ctx context.Context, in *jobpb.JobActionRequest, opts ...grpc.CallOption) (*jobpb.JobResponse, error)

func (g *gateway) action(w http.ResponseWriter, r *http.Request, fn actionFunc) {
	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := fn(ctx, &jobpb.JobActionRequest{Id: mux.Vars(r)["id"]})
	if err != nil {
		g.writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Job)
}

// uploadPhoto 接收照片字节（Content-Type 即图片类型），返回可用于 evidence 提交的引用。
func (g *gateway) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, evidence.MaxPhotoSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	ref, err := g.photos.CapturePhoto(r.Context(), mux.Vars(r)["id"], r.Header.Get("Content-Type"), data)
	if err != nil {
		var ve *job.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		g.log.Errorf("photo capture failed: %v", err)
		writeError(w, http.StatusInternalServerError, "photo capture failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"vehiclePhotoRef": ref.URL,
		"capturedAt":      ref.CapturedAt.Unix(),
	})
}

// uploadSignature 接收签字 PNG，?type=customer|impound_lot。
func (g *gateway) uploadSignature(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, signature.MaxSignatureSize+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	sigType := signature.Type(r.URL.Query().Get("type"))
	ref, err := g.signatures.Capture(r.Context(), mux.Vars(r)["id"], sigType, data)
	if err != nil {
		var ve *job.ValidationError
		switch {
		case errors.Is(err, signature.ErrEmptySignature):
			writeError(w, http.StatusBadRequest, "signature is empty")
		case errors.As(err, &ve):
			writeError(w, http.StatusBadRequest, ve.Error())
		default:
			g.log.Errorf("signature capture failed: %v", err)
			writeError(w, http.StatusInternalServerError, "signature capture failed")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"signatureRef": ref.URL,
		"signedAt":     ref.SignedAt.Unix(),
	})
}

func (g *gateway) submitEvidence(w http.ResponseWriter, r *http.Request) {
	var req jobpb.SubmitEvidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Id = mux.Vars(r)["id"]

	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := g.jobs.SubmitEvidence(ctx, &req)
	if err != nil {
		g.writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Job)
}

func (g *gateway) completeDropoff(w http.ResponseWriter, r *http.Request) {
	var req jobpb.CompleteDropoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	req.Id = mux.Vars(r)["id"]

	ctx, cancel := g.outgoing(r)
	defer cancel()

	resp, err := g.jobs.CompleteDropoffAndPayment(ctx, &req)
	if err != nil {
		g.writeGRPCError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Job)
}

func (g *gateway) writeGRPCError(w http.ResponseWriter, err error) {
	st, ok := status.FromError(err)
	if !ok {
		g.log.Errorf("backend call failed: %v", err)
		writeError(w, http.StatusBadGateway, "backend unavailable")
		return
	}
	writeError(w, httpStatus(st.Code()), st.Message())
}

// httpStatus gRPC 状态码到 HTTP 状态码。
func httpStatus(code codes.Code) int {
	switch code {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.FailedPrecondition:
		return http.StatusConflict
	case codes.Aborted:
		return http.StatusConflict
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Unavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func parseInt32(s string) int32 {
	var n int32
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int32(r-'0')
	}
	return n
}
