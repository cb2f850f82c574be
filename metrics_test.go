package knn

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	var b BasicMetricsCollector

	assert.Equal(t, BasicMetricsStats{}, b.GetStats())

	b.RecordLearn(10*time.Nanosecond, true, nil)
	b.RecordLearn(30*time.Nanosecond, false, errors.New("boom"))
	b.RecordClassify(1, 1, 100*time.Nanosecond, nil)
	b.RecordClassify(3, 0, 300*time.Nanosecond, errors.New("boom"))
	b.RecordClear()

	stats := b.GetStats()
	assert.Equal(t, int64(2), stats.LearnCount)
	assert.Equal(t, int64(1), stats.LearnStored)
	assert.Equal(t, int64(1), stats.LearnErrors)
	assert.Equal(t, int64(20), stats.LearnAvgNanos)
	assert.Equal(t, int64(2), stats.ClassifyCount)
	assert.Equal(t, int64(1), stats.ClassifyErrors)
	assert.Equal(t, int64(1), stats.ClassifyResults)
	assert.Equal(t, int64(200), stats.ClassifyAvgNanos)
	assert.Equal(t, int64(1), stats.ClearCount)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordLearn(time.Second, true, nil)
	mc.RecordClassify(1, 1, time.Second, nil)
	mc.RecordClear()
}
