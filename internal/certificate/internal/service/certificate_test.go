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

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/hug/internal/certificate/internal/domain"
	"github.com/ecodeclub/hug/internal/certificate/internal/event"
	evtmocks "github.com/ecodeclub/hug/internal/certificate/internal/event/mocks"
	"github.com/ecodeclub/hug/internal/certificate/internal/repository"
	repomocks "github.com/ecodeclub/hug/internal/certificate/internal/repository/mocks"
	"github.com/ecodeclub/hug/internal/course"
	coursemocks "github.com/ecodeclub/hug/internal/course/mocks"
	"github.com/ecodeclub/hug/internal/gamification"
	"github.com/ecodeclub/hug/internal/pkg/pdf"
	pdfmocks "github.com/ecodeclub/hug/internal/pkg/pdf/mocks"
	"github.com/ecodeclub/hug/internal/progress"
	progressmocks "github.com/ecodeclub/hug/internal/progress/mocks"
	"github.com/ecodeclub/hug/internal/user"
	usermocks "github.com/ecodeclub/hug/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type certDeps struct {
	repo        *repomocks.MockCertificateRepository
	courseSvc   *coursemocks.MockService
	progressSvc *progressmocks.MockService
	userSvc     *usermocks.MockUserService
	producer    *evtmocks.MockNotificationEventProducer
	converter   *pdfmocks.MockConverter
}

func newCertDeps(ctrl *gomock.Controller) certDeps {
	return certDeps{
		repo:        repomocks.NewMockCertificateRepository(ctrl),
		courseSvc:   coursemocks.NewMockService(ctrl),
		progressSvc: progressmocks.NewMockService(ctrl),
		userSvc:     usermocks.NewMockUserService(ctrl),
		producer:    evtmocks.NewMockNotificationEventProducer(ctrl),
		converter:   pdfmocks.NewMockConverter(ctrl),
	}
}

func (d certDeps) service() *certificateService {
	svc := NewService(d.repo, d.courseSvc, d.progressSvc, d.userSvc,
		d.producer, d.converter, DefaultTemplate).(*certificateService)
	hexes := []string{"a1b2c3d4", "0f1e2d3c4b5a6978"}
	svc.randHex = func(n int) (string, error) {
		res := hexes[0]
		hexes = hexes[1:]
		return res, nil
	}
	svc.now = func() time.Time {
		return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestCertificateService_Generate(t *testing.T) {
	gita := course.Course{Id: 1, Slug: "bhagavad-gita-life-leadership", Name: "Bhagavad Gita"}
	testCases := []struct {
		name string
		mock func(d certDeps)

		wantCert domain.Certificate
		wantErr  error
	}{
		{
			name: "生成成功",
			mock: func(d certDeps) {
				d.courseSvc.EXPECT().Course(gomock.Any(), int64(1)).Return(gita, nil)
				d.progressSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).
					Return(progress.Enrollment{Status: progress.StatusCompleted, CompletedAt: 999}, nil)
				d.repo.EXPECT().CourseCertificate(gomock.Any(), int64(3), int64(1), domain.TypeCompletion).
					Return(domain.Certificate{}, repository.ErrRecordNotFound)
				d.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(user.User{Id: 3, Name: "Arjuna"}, nil)
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, c domain.Certificate) (domain.Certificate, error) {
						c.Id = 7
						return c, nil
					})
				d.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, evt gamification.NotificationEvent) error {
						assert.Equal(t, int64(3), evt.Uid)
						assert.Equal(t, event.TypeCertificateIssued, evt.Type)
						assert.Equal(t, int64(7), evt.BizId)
						return nil
					})
			},
			wantCert: domain.Certificate{
				Id:               7,
				Uid:              3,
				CourseId:         1,
				CertificateType:  domain.TypeCompletion,
				Number:           "HUG-BHA-2026-A1B2C3D4",
				VerificationCode: "0F1E2D3C4B5A6978",
				IssueDate:        "2026-03-15",
				Metadata: domain.Metadata{
					CompletionDate: 999,
					CourseName:     "Bhagavad Gita",
					UserName:       "Arjuna",
				},
			},
		},
		{
			name: "通知失败不影响结果",
			mock: func(d certDeps) {
				d.courseSvc.EXPECT().Course(gomock.Any(), int64(1)).Return(gita, nil)
				d.progressSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).
					Return(progress.Enrollment{Status: progress.StatusCompleted}, nil)
				d.repo.EXPECT().CourseCertificate(gomock.Any(), int64(3), int64(1), domain.TypeCompletion).
					Return(domain.Certificate{}, repository.ErrRecordNotFound)
				d.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(user.User{Id: 3}, nil)
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, c domain.Certificate) (domain.Certificate, error) {
						c.Id = 8
						return c, nil
					})
				d.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mq error"))
			},
			wantCert: domain.Certificate{
				Id:               8,
				Uid:              3,
				CourseId:         1,
				CertificateType:  domain.TypeCompletion,
				Number:           "HUG-BHA-2026-A1B2C3D4",
				VerificationCode: "0F1E2D3C4B5A6978",
				IssueDate:        "2026-03-15",
				Metadata:         domain.Metadata{CourseName: "Bhagavad Gita"},
			},
		},
		{
			name: "课程不存在",
			mock: func(d certDeps) {
				d.courseSvc.EXPECT().Course(gomock.Any(), int64(1)).
					Return(course.Course{}, course.ErrRecordNotFound)
			},
			wantErr: ErrCourseNotFound,
		},
		{
			name: "没有报名",
			mock: func(d certDeps) {
				d.courseSvc.EXPECT().Course(gomock.Any(), int64(1)).Return(gita, nil)
				d.progressSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).
					Return(progress.Enrollment{}, progress.ErrNotEnrolled)
			},
			wantErr: ErrCourseNotCompleted,
		},
		{
			name: "课程没有完成",
			mock: func(d certDeps) {
				d.courseSvc.EXPECT().Course(gomock.Any(), int64(1)).Return(gita, nil)
				d.progressSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).
					Return(progress.Enrollment{Status: progress.StatusInProgress}, nil)
			},
			wantErr: ErrCourseNotCompleted,
		},
		{
			name: "已经有证书",
			mock: func(d certDeps) {
				d.courseSvc.EXPECT().Course(gomock.Any(), int64(1)).Return(gita, nil)
				d.progressSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).
					Return(progress.Enrollment{Status: progress.StatusCompleted}, nil)
				d.repo.EXPECT().CourseCertificate(gomock.Any(), int64(3), int64(1), domain.TypeCompletion).
					Return(domain.Certificate{Id: 2}, nil)
			},
			wantErr: ErrCertificateExists,
		},
		{
			name: "并发生成被唯一索引挡住",
			mock: func(d certDeps) {
				d.courseSvc.EXPECT().Course(gomock.Any(), int64(1)).Return(gita, nil)
				d.progressSvc.EXPECT().Enrollment(gomock.Any(), int64(3), int64(1)).
					Return(progress.Enrollment{Status: progress.StatusCompleted}, nil)
				d.repo.EXPECT().CourseCertificate(gomock.Any(), int64(3), int64(1), domain.TypeCompletion).
					Return(domain.Certificate{}, repository.ErrRecordNotFound)
				d.userSvc.EXPECT().Profile(gomock.Any(), int64(3)).Return(user.User{Id: 3}, nil)
				d.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(domain.Certificate{}, repository.ErrDuplicate)
			},
			wantErr: ErrCertificateExists,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newCertDeps(ctrl)
			tc.mock(d)
			cert, err := d.service().Generate(context.Background(), 3, 1, "")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantCert, cert)
		})
	}
}

func TestCertificateService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := newCertDeps(ctrl)
	d.repo.EXPECT().CertificateByCode(gomock.Any(), "0F1E2D3C4B5A6978").
		Return(domain.Certificate{Id: 7}, nil)
	cert, err := d.service().Verify(context.Background(), " 0f1e2d3c4b5a6978 ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), cert.Id)
}

func TestCertificateService_RenderPDF(t *testing.T) {
	cert := domain.Certificate{
		Id:               7,
		Uid:              3,
		CertificateType:  domain.TypeCompletion,
		Number:           "HUG-BHA-2026-A1B2C3D4",
		VerificationCode: "0F1E2D3C4B5A6978",
		IssueDate:        "2026-03-15",
		Metadata:         domain.Metadata{CourseName: "Bhagavad Gita", UserName: "Arjuna <3>"},
	}
	testCases := []struct {
		name string
		mock func(d certDeps)
		uid  int64

		wantData []byte
		wantErr  error
	}{
		{
			name: "下载成功",
			mock: func(d certDeps) {
				d.repo.EXPECT().Certificate(gomock.Any(), int64(7)).Return(cert, nil)
				d.converter.EXPECT().ConvertHTMLToPDF(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, html string, opts ...pdf.Option) ([]byte, error) {
						assert.True(t, strings.Contains(html, "Arjuna &lt;3&gt;"))
						assert.True(t, strings.Contains(html, "HUG-BHA-2026-A1B2C3D4"))
						var o pdf.Options
						for _, opt := range opts {
							opt(&o)
						}
						assert.True(t, o.Landscape)
						assert.Equal(t, "HUG-BHA-2026-A1B2C3D4", o.Title)
						return []byte("%PDF"), nil
					})
			},
			uid:      3,
			wantData: []byte("%PDF"),
		},
		{
			name: "别人的证书",
			mock: func(d certDeps) {
				d.repo.EXPECT().Certificate(gomock.Any(), int64(7)).Return(cert, nil)
			},
			uid:     4,
			wantErr: ErrCertificateNotFound,
		},
		{
			name: "证书不存在",
			mock: func(d certDeps) {
				d.repo.EXPECT().Certificate(gomock.Any(), int64(7)).
					Return(domain.Certificate{}, repository.ErrRecordNotFound)
			},
			uid:     3,
			wantErr: ErrCertificateNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d := newCertDeps(ctrl)
			tc.mock(d)
			_, data, err := d.service().RenderPDF(context.Background(), tc.uid, 7)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantData, data)
		})
	}
}
