package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameURL(t *testing.T) {
	assert.True(t, SameURL("https://mirrors.aliyun.com/pypi/simple/", "https://mirrors.aliyun.com/pypi/simple"))
	assert.True(t, SameURL("HTTPS://Mirrors.Aliyun.com/", "https://mirrors.aliyun.com"))
	assert.False(t, SameURL("https://a.example.com", "https://b.example.com"))
}

func TestFindByName_CaseInsensitive(t *testing.T) {
	list := []Mirror{{Name: "Official", URL: "https://pypi.org/simple"}, {Name: "Aliyun", URL: "https://mirrors.aliyun.com/pypi/simple/"}}

	m, ok := FindByName(list, "aliyun")
	assert.True(t, ok)
	assert.Equal(t, "Aliyun", m.Name)

	_, ok = FindByName(list, "tuna")
	assert.False(t, ok)
}

func TestBenchmarkResult_Sentinel(t *testing.T) {
	down := BenchmarkResult{Latency: Unreachable}
	up := BenchmarkResult{Latency: 120 * time.Millisecond}

	assert.False(t, down.Reachable())
	assert.Equal(t, "timeout", down.LatencyLabel())
	assert.True(t, up.Reachable())
	assert.Equal(t, "120ms", up.LatencyLabel())
}

func TestToolStatus_Label(t *testing.T) {
	candidates := []Mirror{{Name: "Aliyun", URL: "https://mirrors.aliyun.com/pypi/simple/"}}

	assert.Equal(t, LabelDefault, NewToolStatus("pip", "", "", false, candidates).Label())
	assert.Equal(t, "Aliyun", NewToolStatus("pip", "", "https://mirrors.aliyun.com/pypi/simple", true, candidates).Label())
	assert.Equal(t, LabelCustom, NewToolStatus("pip", "", "https://pypi.internal/simple", true, candidates).Label())

	unreadable := NewToolStatus("docker", "", "", false, candidates)
	unreadable.Err = assert.AnError
	assert.Equal(t, LabelUnreadable, unreadable.Label())
}
