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
	"context"
	"time"

	"github.com/ecodeclub/hug/internal/activity"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/gita"
	"github.com/ecodeclub/hug/internal/quiz"
	"github.com/ecodeclub/hug/internal/recommendation"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/gotomicro/ego/task/ejob"
)

func initCronJobs(
	expireJob *recommendation.ExpireJob,
	warmJob *gamification.LeaderboardWarmJob,
) []ecron.Ecron {
	return []ecron.Ecron{
		ecron.Load("cron.recommendation").Build(ecron.WithJob(funcJobWrapper(expireJob))),
		ecron.Load("cron.leaderboard").Build(ecron.WithJob(funcJobWrapper(warmJob))),
	}
}

func funcJobWrapper(job ecron.NamedJob) ecron.FuncJob {
	name := job.Name()
	return func(ctx context.Context) error {
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run(ctx)
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		duration := time.Since(start)
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldKey("运行时间"),
			elog.FieldCost(duration))
		return nil
	}
}

// jobStarter 一次性任务，通过 --job=名字 来执行
type jobStarter interface {
	Name() string
	Start(ctx ejob.Context) error
}

func initJobs(
	catalogSeed *course.SeedJobStarter,
	reindex *course.SearchReindexJobStarter,
	quizSeed *quiz.SeedJobStarter,
	activitySeed *activity.SeedJobStarter,
	gitaSeed *gita.SeedJobStarter,
) []ejob.Ejob {
	starters := []jobStarter{catalogSeed, reindex, quizSeed, activitySeed, gitaSeed}
	res := make([]ejob.Ejob, 0, len(starters))
	for _, s := range starters {
		res = append(res, ejob.DefaultContainer().Build(
			ejob.WithName(s.Name()),
			ejob.WithStartFunc(s.Start)))
	}
	return res
}
