package contextutil_test

import (
	"context"
	"testing"

	"go-payroll/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithEmployeeID(ctx, "emp-1")
	ctx = contextutil.WithRole(ctx, "HR")

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "emp-1", md.EmployeeID)
	assert.Equal(t, "HR", md.Role)
}

func TestGetLogger_Fallbacks(t *testing.T) {
	base := zap.NewNop().Named("base")

	assert.Same(t, base, contextutil.GetLogger(context.Background(), base))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, base))
}
