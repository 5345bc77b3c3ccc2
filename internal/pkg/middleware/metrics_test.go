// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder_Build(t *testing.T) {
	gin.SetMode(gin.TestMode)
	builder := NewMetricsBuilderWithRegisterer(prometheus.NewRegistry())
	server := gin.New()
	server.Use(builder.Build())
	server.GET("/course/list", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	server.GET("/learning/dashboard", func(ctx *gin.Context) {
		ctx.Set(session.CtxSessionKey, session.NewMemorySession(session.Claims{Uid: 1}))
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/course/list", "/course/list", "/learning/dashboard", "/not-exist"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(
		builder.counterVec.WithLabelValues(http.MethodGet, "/course/list", "200", "guest")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		builder.counterVec.WithLabelValues(http.MethodGet, "/learning/dashboard", "200", "member")))
	assert.Equal(t, float64(1), testutil.ToFloat64(
		builder.counterVec.WithLabelValues(http.MethodGet, "unknown", "404", "guest")))
}
