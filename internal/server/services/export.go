package services

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"timeboard/internal/common"
	"timeboard/internal/datex"
	"timeboard/internal/export"
	sc "timeboard/internal/server/config"
	"timeboard/internal/server/models"
	"timeboard/internal/server/repositories/repomanager"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportService renders a month of activities as CSV or XLSX, and can
// archive an XLSX to the configured S3-compatible object store, handing
// back a presigned download link.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

// NewExportService constructs an ExportService using repositories and server config.
func NewExportService(db *sql.DB, repomanager repomanager.RepositoryManager, config *sc.Config) *ExportService {
	return &ExportService{
		db:          db,
		repomanager: repomanager,
		config:      config,
	}
}

// BuildCSV renders the "YYYY-MM" month as semicolon-delimited CSV. An empty
// userID exports the whole team; otherwise only that user's rows.
func (s *ExportService) BuildCSV(ctx context.Context, month, userID string) ([]byte, error) {
	records, err := s.loadRecords(ctx, month, userID)
	if err != nil {
		return nil, err
	}
	return export.WriteCSV(records, s.exportOptions())
}

// BuildXLSX renders the "YYYY-MM" month as a spreadsheet. An empty userID
// exports the whole team; otherwise only that user's rows.
func (s *ExportService) BuildXLSX(ctx context.Context, month, userID string) ([]byte, error) {
	records, err := s.loadRecords(ctx, month, userID)
	if err != nil {
		return nil, err
	}
	return export.WriteXLSX(records, s.exportOptions())
}

// ArchiveExport uploads the month's XLSX to the object store and returns a
// presigned GET URL valid for 15 minutes. Deployments without an S3 endpoint
// get common.ErrArchiveNotConfigured.
func (s *ExportService) ArchiveExport(ctx context.Context, month, userID string) (string, error) {
	if s.config.S3BaseEndpoint == "" || s.config.S3Bucket == "" {
		return "", common.ErrArchiveNotConfigured
	}

	data, err := s.BuildXLSX(ctx, month, userID)
	if err != nil {
		return "", err
	}

	client, err := s.getS3Client()
	if err != nil {
		return "", fmt.Errorf("error creating s3 client: %v", err)
	}

	bucket := s.config.S3Bucket
	key := exportStorageKey(month)

	if _, err := putS3Object(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String(xlsxContentType),
	}); err != nil {
		return "", fmt.Errorf("error uploading export: %v", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", fmt.Errorf("error presigning export link: %v", err)
	}
	return req.URL, nil
}

// exportStorageKey builds a collision-free object key for one archived month.
func exportStorageKey(month string) string {
	return fmt.Sprintf("exports/%s/%v.xlsx", month, uuid.New())
}

func (s *ExportService) exportOptions() export.Options {
	return export.Options{
		Unit:        export.ChargeUnit(s.config.ExportChargeUnit),
		HoursPerDay: s.config.HoursPerDay,
	}
}

func (s *ExportService) loadRecords(ctx context.Context, month, userID string) ([]export.Record, error) {
	year, m, err := datex.ParseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	from, to := datex.MonthBounds(year, m)

	repo := s.repomanager.Activities(s.db)
	var acts []*models.Activity
	if userID == "" {
		acts, err = repo.ListForRange(ctx, from, to)
	} else {
		acts, err = repo.ListForUserRange(ctx, userID, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing activities: %v", err)
	}

	records := make([]export.Record, len(acts))
	for i, a := range acts {
		records[i] = export.Record{
			Day:         a.Day,
			Ticket:      a.Ticket,
			Subject:     a.Subject,
			Project:     a.Project,
			Hours:       a.Hours,
			Type:        a.Type,
			BillingCode: a.BillingCode,
		}
	}
	return records, nil
}

// --- S3 plumbing; seams keep the AWS SDK mockable in tests ---

var loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx, optFns...)
}

var newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
	return s3.NewFromConfig(cfg, optFns...)
}

var newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
	return s3.NewPresignClient(c)
}

var putS3Object = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return c.PutObject(ctx, in, optFns...)
}

var presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return pc.PresignGetObject(ctx, in, optFns...)
}

func (s *ExportService) getS3Client() (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return client, nil
}
