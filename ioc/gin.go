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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hug/internal/activity"
	"github.com/ecodeclub/hug/internal/analytics"
	"github.com/ecodeclub/hug/internal/bff"
	"github.com/ecodeclub/hug/internal/certificate"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/gita"
	"github.com/ecodeclub/hug/internal/notification"
	"github.com/ecodeclub/hug/internal/pkg/middleware"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/quiz"
	"github.com/ecodeclub/hug/internal/recommendation"
	"github.com/ecodeclub/hug/internal/search"
	"github.com/ecodeclub/hug/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	courseHdl *course.Handler,
	progressHdl *progress.Handler,
	quizHdl *quiz.Handler,
	activityHdl *activity.Handler,
	gameHdl *gamification.Handler,
	recHdl *recommendation.Handler,
	certHdl *certificate.Handler,
	notifyHdl *notification.Handler,
	searchHdl *search.Handler,
	analyticsHdl *analytics.Handler,
	gitaHdl *gita.Handler,
	bffHdl *bff.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	origins := econf.GetStringSlice("cors.allowOrigins")
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			for _, o := range origins {
				if strings.Contains(origin, o) {
					return true
				}
			}
			return false
		},
	}))
	res.Use(middleware.NewMetricsBuilder().Build())
	res.GET("/health", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})

	userHdl.PublicRoutes(res.Engine)
	courseHdl.PublicRoutes(res.Engine)
	certHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	gitaHdl.PublicRoutes(res.Engine)

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	progressHdl.PrivateRoutes(res.Engine)
	quizHdl.PrivateRoutes(res.Engine)
	activityHdl.PrivateRoutes(res.Engine)
	gameHdl.PrivateRoutes(res.Engine)
	recHdl.PrivateRoutes(res.Engine)
	certHdl.PrivateRoutes(res.Engine)
	notifyHdl.PrivateRoutes(res.Engine)
	analyticsHdl.PrivateRoutes(res.Engine)
	gitaHdl.PrivateRoutes(res.Engine)
	bffHdl.PrivateRoutes(res.Engine)
	return res
}
