package usecase_test

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/bnema/omnitab/internal/domain/entity"
	"github.com/bnema/omnitab/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// sequentialIDs returns a generator producing tab-1, tab-2, ...
func sequentialIDs() entity.IDGenerator {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("tab-%d", n.Add(1))
	}
}
