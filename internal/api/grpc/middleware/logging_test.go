package middleware

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/emr-server/internal/logger"
)

func TestLogging_HandleGRPC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantMsg   string
	}{
		{name: "ok", wantLevel: "level=INFO", wantMsg: "gRPC request completed"},
		{name: "client fault", err: status.Error(codes.InvalidArgument, "name is required"), wantLevel: "level=WARN", wantMsg: "gRPC request rejected"},
		{name: "server fault", err: status.Error(codes.Internal, "internal server error"), wantLevel: "level=ERROR", wantMsg: "gRPC request failed"},
		{name: "plain error", err: errors.New("boom"), wantLevel: "level=ERROR", wantMsg: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			lg := NewLogging(logger.NewWithWriter(&buf, 0))
			info := &grpc.UnaryServerInfo{FullMethod: "/emr.v1.EMR/AddPatient"}

			resp, err := lg.HandleGRPC(context.Background(), "req", info, func(ctx context.Context, req interface{}) (interface{}, error) {
				if tt.err != nil {
					return nil, tt.err
				}
				return "ok", nil
			})

			assert.Equal(t, tt.err, err)
			if tt.err == nil {
				assert.Equal(t, "ok", resp)
			}
			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), tt.wantMsg)
			assert.Contains(t, buf.String(), "/emr.v1.EMR/AddPatient")
		})
	}
}

func TestLogging_DoesNotLogRequest(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogging(logger.NewWithWriter(&buf, -4))

	info := &grpc.UnaryServerInfo{FullMethod: "/emr.v1.EMR/AddPatient"}
	_, _ = lg.HandleGRPC(context.Background(), "medicalHistory=asthma", info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, nil
	})

	assert.NotContains(t, buf.String(), "asthma")
}
