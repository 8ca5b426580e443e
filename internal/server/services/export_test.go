package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"timeboard/internal/common"
	"timeboard/internal/server/config"
	"timeboard/internal/server/models"
	"timeboard/internal/timesheet"
)

func exportActivities(t *testing.T) *fakeActivitiesRepo {
	t.Helper()
	return &fakeActivitiesRepo{
		rangeOut: []*models.Activity{
			{UserID: "u1", Day: day(t, "2024-03-04"), Ticket: "T-1", Subject: "fix login", Project: "alpha", Hours: 4, Type: timesheet.TypeWork, BillingCode: "BC-1"},
			{UserID: "u2", Day: day(t, "2024-03-05"), Subject: "sprint review", Hours: 1, Type: timesheet.TypeMeeting},
		},
		listUserOut: []*models.Activity{
			{UserID: "u1", Day: day(t, "2024-03-04"), Ticket: "T-1", Subject: "fix login", Project: "alpha", Hours: 4, Type: timesheet.TypeWork, BillingCode: "BC-1"},
		},
	}
}

func newExportService(t *testing.T, acts *fakeActivitiesRepo, cfg *config.Config) (*ExportService, func()) {
	t.Helper()
	db, _ := newSQLMockDB(t)
	return NewExportService(db, &fakeRepoManager{a: acts}, cfg), func() { db.Close() }
}

func parseCSV(t *testing.T, out []byte) [][]string {
	t.Helper()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("missing UTF-8 BOM")
	}
	r := csv.NewReader(bytes.NewReader(out[3:]))
	r.Comma = ';'
	rows, err := r.ReadAll()
	if err != nil {
		t.Fatalf("csv parse error: %v", err)
	}
	return rows
}

func TestBuildCSV_WholeTeam(t *testing.T) {
	acts := exportActivities(t)
	s, closeDB := newExportService(t, acts, &config.Config{ExportChargeUnit: "hours", HoursPerDay: 8})
	defer closeDB()

	out, err := s.BuildCSV(context.Background(), "2024-03", "")
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}

	rows := parseCSV(t, out)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 lines, got %d", len(rows))
	}
	if rows[1][0] != "2024-03-04" || rows[1][1] != "T-1" || rows[1][4] != "4" || rows[1][5] != "Work" || rows[1][6] != "BC-1" {
		t.Fatalf("unexpected first line: %v", rows[1])
	}

	if !acts.rangeFrom.Equal(day(t, "2024-03-01")) || !acts.rangeTo.Equal(day(t, "2024-03-31")) {
		t.Fatalf("unexpected range args: %v %v", acts.rangeFrom, acts.rangeTo)
	}
}

func TestBuildCSV_SingleUser(t *testing.T) {
	acts := exportActivities(t)
	s, closeDB := newExportService(t, acts, &config.Config{ExportChargeUnit: "hours", HoursPerDay: 8})
	defer closeDB()

	out, err := s.BuildCSV(context.Background(), "2024-03", "u1")
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}
	if rows := parseCSV(t, out); len(rows) != 2 {
		t.Fatalf("expected header + 1 line, got %d", len(rows))
	}
	if acts.listUserID != "u1" {
		t.Fatalf("user filter not applied: %q", acts.listUserID)
	}
}

func TestBuildCSV_DayEquivalents(t *testing.T) {
	acts := exportActivities(t)
	s, closeDB := newExportService(t, acts, &config.Config{ExportChargeUnit: "days", HoursPerDay: 8})
	defer closeDB()

	out, err := s.BuildCSV(context.Background(), "2024-03", "u1")
	if err != nil {
		t.Fatalf("BuildCSV error: %v", err)
	}
	rows := parseCSV(t, out)
	if rows[1][4] != "0.5" {
		t.Fatalf("charge not converted to days: %v", rows[1])
	}
}

func TestBuildCSV_Validation(t *testing.T) {
	s, closeDB := newExportService(t, &fakeActivitiesRepo{}, &config.Config{})
	defer closeDB()

	if _, err := s.BuildCSV(context.Background(), "junk", ""); !errors.Is(err, common.ErrorValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestBuildCSV_RepoError(t *testing.T) {
	s, closeDB := newExportService(t, &fakeActivitiesRepo{rangeErr: errBoom{}}, &config.Config{})
	defer closeDB()

	_, err := s.BuildCSV(context.Background(), "2024-03", "")
	if err == nil || !regexp.MustCompile(`error listing activities: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestBuildXLSX(t *testing.T) {
	acts := exportActivities(t)
	s, closeDB := newExportService(t, acts, &config.Config{ExportChargeUnit: "hours", HoursPerDay: 8})
	defer closeDB()

	out, err := s.BuildXLSX(context.Background(), "2024-03", "")
	if err != nil {
		t.Fatalf("BuildXLSX error: %v", err)
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(out, []byte("PK")) {
		t.Fatalf("expected zip magic, got % x", out[:4])
	}
}

// --- archive ---

func archiveConfig() *config.Config {
	return &config.Config{
		ExportChargeUnit: "hours",
		HoursPerDay:      8,
		S3Region:         "us-east-1",
		S3RootUser:       "minioadmin",
		S3RootPassword:   "minioadmin",
		S3BaseEndpoint:   "http://127.0.0.1:9000",
		S3Bucket:         "timeboard",
	}
}

func restoreS3Seams(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := putS3Object
	origPresign := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		putS3Object = origPut
		presignGetObject = origPresign
	})
}

func TestArchiveExport_NotConfigured(t *testing.T) {
	s, closeDB := newExportService(t, exportActivities(t), &config.Config{ExportChargeUnit: "hours"})
	defer closeDB()

	_, err := s.ArchiveExport(context.Background(), "2024-03", "")
	if !errors.Is(err, common.ErrArchiveNotConfigured) {
		t.Fatalf("want ErrArchiveNotConfigured, got %v", err)
	}
}

func TestArchiveExport_Success(t *testing.T) {
	s, closeDB := newExportService(t, exportActivities(t), archiveConfig())
	defer closeDB()
	restoreS3Seams(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		return aws.Config{}, nil
	}

	var capturedBaseEndpoint string
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		var opts s3.Options
		for _, fn := range optFns {
			fn(&opts)
		}
		if opts.BaseEndpoint == nil {
			t.Fatal("BaseEndpoint not set")
		}
		capturedBaseEndpoint = *opts.BaseEndpoint
		if !opts.UsePathStyle {
			t.Fatal("UsePathStyle not set")
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }

	var putKey, putBucket string
	putS3Object = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		putBucket = *in.Bucket
		putKey = *in.Key
		if *in.ContentType != xlsxContentType {
			t.Fatalf("wrong content type: %q", *in.ContentType)
		}
		data, err := io.ReadAll(in.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("PK")) {
			t.Fatal("uploaded body is not an xlsx file")
		}
		return &s3.PutObjectOutput{}, nil
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		if *in.Bucket != putBucket || *in.Key != putKey {
			t.Fatalf("presign target differs from upload: %q/%q vs %q/%q", *in.Bucket, *in.Key, putBucket, putKey)
		}
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/presigned"}, nil
	}

	url, err := s.ArchiveExport(context.Background(), "2024-03", "")
	if err != nil {
		t.Fatalf("ArchiveExport error: %v", err)
	}
	if url != "http://127.0.0.1:9000/presigned" {
		t.Fatalf("unexpected url: %q", url)
	}
	if capturedBaseEndpoint != "http://127.0.0.1:9000" {
		t.Fatalf("BaseEndpoint mismatch: %q", capturedBaseEndpoint)
	}
	if putBucket != "timeboard" {
		t.Fatalf("unexpected bucket: %q", putBucket)
	}
	if !strings.HasPrefix(putKey, "exports/2024-03/") || !strings.HasSuffix(putKey, ".xlsx") {
		t.Fatalf("unexpected object key: %q", putKey)
	}
}

func TestArchiveExport_ClientError(t *testing.T) {
	s, closeDB := newExportService(t, exportActivities(t), archiveConfig())
	defer closeDB()
	restoreS3Seams(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}

	_, err := s.ArchiveExport(context.Background(), "2024-03", "")
	if err == nil || !regexp.MustCompile(`error creating s3 client: .*load-fail`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
}

func TestArchiveExport_PutError(t *testing.T) {
	s, closeDB := newExportService(t, exportActivities(t), archiveConfig())
	defer closeDB()
	restoreS3Seams(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	putS3Object = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return nil, errors.New("put-fail")
	}

	_, err := s.ArchiveExport(context.Background(), "2024-03", "")
	if err == nil || !regexp.MustCompile(`error uploading export: .*put-fail`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped put error, got %v", err)
	}
}

func TestArchiveExport_PresignError(t *testing.T) {
	s, closeDB := newExportService(t, exportActivities(t), archiveConfig())
	defer closeDB()
	restoreS3Seams(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client { return &s3.Client{} }
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient { return &s3.PresignClient{} }
	putS3Object = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return &s3.PutObjectOutput{}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}

	_, err := s.ArchiveExport(context.Background(), "2024-03", "")
	if err == nil || !regexp.MustCompile(`error presigning export link: .*presign-fail`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped presign error, got %v", err)
	}
}
