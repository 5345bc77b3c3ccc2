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
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"html/template"
	"strings"
	"time"

	"github.com/ecodeclub/hug/internal/certificate/internal/domain"
	"github.com/ecodeclub/hug/internal/certificate/internal/event"
	"github.com/ecodeclub/hug/internal/certificate/internal/repository"
	"github.com/ecodeclub/hug/internal/course"
	"github.com/ecodeclub/hug/internal/pkg/pdf"
	"github.com/ecodeclub/hug/internal/progress"
	"github.com/ecodeclub/hug/internal/user"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrRecordNotFound      = repository.ErrRecordNotFound
	ErrCourseNotFound      = errors.New("课程不存在")
	ErrCourseNotCompleted  = errors.New("课程还没有完成")
	ErrCertificateExists   = errors.New("证书已经存在")
	ErrCertificateNotFound = errors.New("证书不存在")
)

type Service interface {
	MyCertificates(ctx context.Context, uid int64) ([]domain.Certificate, error)
	// Verify 找不到的时候返回 ErrRecordNotFound
	Verify(ctx context.Context, code string) (domain.Certificate, error)
	Generate(ctx context.Context, uid, courseId int64, typ string) (domain.Certificate, error)
	// RenderPDF 只能下载自己的证书
	RenderPDF(ctx context.Context, uid, id int64) (domain.Certificate, []byte, error)
}

type certificateService struct {
	repo        repository.CertificateRepository
	courseSvc   course.Service
	progressSvc progress.Service
	userSvc     user.UserService
	producer    event.NotificationEventProducer
	converter   pdf.Converter
	template    string

	// randHex 生成 n 个字节的随机数，编码成十六进制
	randHex func(n int) (string, error)
	now     func() time.Time
	logger  *elog.Component
}

func NewService(repo repository.CertificateRepository,
	courseSvc course.Service,
	progressSvc progress.Service,
	userSvc user.UserService,
	producer event.NotificationEventProducer,
	converter pdf.Converter,
	template string) Service {
	return &certificateService{
		repo:        repo,
		courseSvc:   courseSvc,
		progressSvc: progressSvc,
		userSvc:     userSvc,
		producer:    producer,
		converter:   converter,
		template:    template,
		randHex:     randHex,
		now:         time.Now,
		logger:      elog.DefaultLogger,
	}
}

func randHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (s *certificateService) MyCertificates(ctx context.Context, uid int64) ([]domain.Certificate, error) {
	return s.repo.UserCertificates(ctx, uid)
}

func (s *certificateService) Verify(ctx context.Context, code string) (domain.Certificate, error) {
	return s.repo.CertificateByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

func (s *certificateService) Generate(ctx context.Context, uid, courseId int64, typ string) (domain.Certificate, error) {
	if typ == "" {
		typ = domain.TypeCompletion
	}
	c, err := s.courseSvc.Course(ctx, courseId)
	if errors.Is(err, course.ErrRecordNotFound) {
		return domain.Certificate{}, ErrCourseNotFound
	}
	if err != nil {
		return domain.Certificate{}, err
	}
	e, err := s.progressSvc.Enrollment(ctx, uid, courseId)
	if errors.Is(err, progress.ErrNotEnrolled) {
		return domain.Certificate{}, ErrCourseNotCompleted
	}
	if err != nil {
		return domain.Certificate{}, err
	}
	if e.Status != progress.StatusCompleted {
		return domain.Certificate{}, ErrCourseNotCompleted
	}
	_, err = s.repo.CourseCertificate(ctx, uid, courseId, typ)
	switch {
	case err == nil:
		return domain.Certificate{}, ErrCertificateExists
	case !errors.Is(err, repository.ErrRecordNotFound):
		return domain.Certificate{}, err
	}
	u, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return domain.Certificate{}, err
	}
	suffix, err := s.randHex(4)
	if err != nil {
		return domain.Certificate{}, err
	}
	code, err := s.randHex(8)
	if err != nil {
		return domain.Certificate{}, err
	}

	now := s.now()
	cert, err := s.repo.Create(ctx, domain.Certificate{
		Uid:              uid,
		CourseId:         courseId,
		CertificateType:  typ,
		Number:           domain.NewNumber(c.Slug, now.Year(), suffix),
		VerificationCode: strings.ToUpper(code),
		IssueDate:        now.Format(time.DateOnly),
		Metadata: domain.Metadata{
			CompletionDate: e.CompletedAt,
			CourseName:     c.Name,
			UserName:       u.Name,
		},
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return domain.Certificate{}, ErrCertificateExists
	}
	if err != nil {
		return domain.Certificate{}, err
	}
	s.notify(ctx, cert)
	return cert, nil
}

func (s *certificateService) notify(ctx context.Context, cert domain.Certificate) {
	if s.producer == nil {
		return
	}
	evt := event.NewCertificateIssuedEvent(cert.Uid, cert.Id, cert.Metadata.CourseName, cert.Number)
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送证书通知失败",
			elog.FieldErr(err),
			elog.Int64("uid", cert.Uid),
			elog.Int64("certificateId", cert.Id))
	}
}

func (s *certificateService) RenderPDF(ctx context.Context, uid, id int64) (domain.Certificate, []byte, error) {
	cert, err := s.repo.Certificate(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) || (err == nil && cert.Uid != uid) {
		return domain.Certificate{}, nil, ErrCertificateNotFound
	}
	if err != nil {
		return domain.Certificate{}, nil, err
	}
	html, err := s.renderHTML(cert)
	if err != nil {
		return domain.Certificate{}, nil, err
	}
	data, err := s.converter.ConvertHTMLToPDF(ctx, html, pdf.PaperA4, pdf.MarginsNone,
		pdf.WithLandscape(true), pdf.WithTitle(cert.Number))
	return cert, data, err
}

type templateData struct {
	UserName         string
	CourseName       string
	CertificateType  string
	Number           string
	IssueDate        string
	VerificationCode string
}

func (s *certificateService) renderHTML(cert domain.Certificate) (string, error) {
	t, err := template.New("certificate").Parse(s.template)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = t.Execute(&buf, templateData{
		UserName:         cert.Metadata.UserName,
		CourseName:       cert.Metadata.CourseName,
		CertificateType:  cert.CertificateType,
		Number:           cert.Number,
		IssueDate:        cert.IssueDate,
		VerificationCode: cert.VerificationCode,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
