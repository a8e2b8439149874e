package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"healthtrack/repository"
	"healthtrack/testutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	rektypes "github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	awssns "github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pngURI = "data:image/png;base64,iVBORw0KGgo="

type fakeSNS struct {
	published []*awssns.PublishInput
	failFor   string
}

func (f *fakeSNS) CreatePlatformEndpoint(_ context.Context, in *awssns.CreatePlatformEndpointInput, _ ...func(*awssns.Options)) (*awssns.CreatePlatformEndpointOutput, error) {
	return &awssns.CreatePlatformEndpointOutput{EndpointArn: aws.String("arn:endpoint/" + aws.ToString(in.Token))}, nil
}

func (f *fakeSNS) Publish(_ context.Context, in *awssns.PublishInput, _ ...func(*awssns.Options)) (*awssns.PublishOutput, error) {
	if f.failFor != "" && aws.ToString(in.TargetArn) == f.failFor {
		return nil, errors.New("endpoint disabled")
	}
	f.published = append(f.published, in)
	return &awssns.PublishOutput{}, nil
}

func TestPushServiceRegisterAndPush(t *testing.T) {
	devices := repository.NewDeviceRepo(testutil.NewDB(t))
	sns := &fakeSNS{}
	push := NewPushService(devices, sns, "arn:app/fcm")
	ctx := context.Background()
	userID := "8b0c6d0e-8d7e-4c36-a0c1-3f4f1f7b2a10"

	first, err := push.RegisterDevice(ctx, userID, "Android", "tok-1")
	require.NoError(t, err)
	again, err := push.RegisterDevice(ctx, userID, "android", "tok-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "arn:endpoint/tok-1", again.EndpointARN)

	require.NoError(t, push.PushToUser(ctx, userID, "HealthTrack", "Over goal", map[string]string{"type": "goal_exceeded"}))
	require.Len(t, sns.published, 1)
	assert.Equal(t, "json", aws.ToString(sns.published[0].MessageStructure))

	var msg map[string]string
	require.NoError(t, json.Unmarshal([]byte(aws.ToString(sns.published[0].Message)), &msg))
	assert.Equal(t, "Over goal", msg["default"])
	assert.Contains(t, msg["GCM"], `"goal_exceeded"`)

	require.NoError(t, push.SetEnabled(ctx, userID, false))
	require.NoError(t, push.PushToUser(ctx, userID, "HealthTrack", "again", nil))
	assert.Len(t, sns.published, 1)
}

func TestPushServiceReportsFailedDevices(t *testing.T) {
	devices := repository.NewDeviceRepo(testutil.NewDB(t))
	sns := &fakeSNS{failFor: "arn:endpoint/bad"}
	push := NewPushService(devices, sns, "arn:app/fcm")
	ctx := context.Background()

	_, err := push.RegisterDevice(ctx, "u1", "ios", "good")
	require.NoError(t, err)
	_, err = push.RegisterDevice(ctx, "u1", "ios", "bad")
	require.NoError(t, err)

	err = push.PushToUser(ctx, "u1", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Len(t, sns.published, 1)
}

func TestPushServicePlatforms(t *testing.T) {
	devices := repository.NewDeviceRepo(testutil.NewDB(t))

	_, err := NewPushService(devices, &fakeSNS{}, "arn").RegisterDevice(context.Background(), "u", "windows", "t")
	assert.ErrorIs(t, err, ErrUnknownPlatform)

	_, err = NewPushService(devices, &fakeSNS{}, "").RegisterDevice(context.Background(), "u", "ios", "t")
	assert.ErrorIs(t, err, ErrPushDisabled)
}

type fakeSES struct {
	inputs []*ses.SendEmailInput
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.inputs = append(f.inputs, in)
	return &ses.SendEmailOutput{}, nil
}

func TestSESMailerSendWelcome(t *testing.T) {
	client := &fakeSES{}
	require.NoError(t, NewSESMailer(client, "noreply@healthtrack.app").SendWelcome(context.Background(), "a@b.c", "Alex", 2211))

	require.Len(t, client.inputs, 1)
	in := client.inputs[0]
	assert.Equal(t, "noreply@healthtrack.app", aws.ToString(in.Source))
	assert.Equal(t, []string{"a@b.c"}, in.Destination.ToAddresses)
	assert.Contains(t, aws.ToString(in.Message.Body.Text.Data), "2211 kcal")
}

type fakeS3 struct {
	key         string
	contentType string
	body        []byte
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.key = aws.ToString(in.Key)
	f.contentType = aws.ToString(in.ContentType)
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3AvatarUpload(t *testing.T) {
	client := &fakeS3{}
	store := NewS3AvatarStorage(client, "bucket", "https://cdn.example.com/")

	url, err := store.Upload(context.Background(), "user-1", pngURI)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(client.key, "profile-pictures/user-1-"))
	assert.True(t, strings.HasSuffix(client.key, ".png"))
	assert.Equal(t, "image/png", client.contentType)
	assert.Equal(t, "https://cdn.example.com/"+client.key, url)
	assert.NotEmpty(t, client.body)
}

func TestDecodeDataURI(t *testing.T) {
	ct, data, err := DecodeDataURI(pngURI)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), data)

	_, _, err = DecodeDataURI("not a data uri")
	assert.Error(t, err)
	_, _, err = DecodeDataURI("data:text/plain;base64,aGk=")
	assert.Error(t, err)
	_, _, err = DecodeDataURI("data:image/png;base64,***")
	assert.Error(t, err)
}

type fakeRekognition struct {
	labels []string
}

func (f fakeRekognition) DetectLabels(_ context.Context, in *rekognition.DetectLabelsInput, _ ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error) {
	out := &rekognition.DetectLabelsOutput{}
	for _, l := range f.labels {
		out.Labels = append(out.Labels, rektypes.Label{Name: aws.String(l)})
	}
	return out, nil
}

func TestRekognitionRecognizer(t *testing.T) {
	labels, err := NewRekognitionRecognizer(fakeRekognition{labels: []string{"Salad", "Bowl"}}).Labels(context.Background(), pngURI)
	require.NoError(t, err)
	assert.Equal(t, []string{"Salad", "Bowl"}, labels)

	_, err = NewRekognitionRecognizer(fakeRekognition{}).Labels(context.Background(), pngURI)
	assert.Error(t, err)
}
