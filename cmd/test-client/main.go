// Command test-client streams synthetic JPEG frames to a running hub and
// prints every ProcessedFrame it gets back.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"inspection-hub/go-backend/internal/auth"
	"inspection-hub/go-backend/internal/services"
	"inspection-hub/go-backend/pkg/pb"
)

type options struct {
	addr        string
	secret      string
	alg         string
	frames      int
	interval    time.Duration
	width       int
	height      int
	sourceID    string
	pipelineID  string
	productCode string
	processCode string
	itemID      string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:          "test-client",
		Short:        "Stream synthetic frames to the inspection hub",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.addr, "addr", "localhost:50051", "hub gRPC address")
	f.StringVar(&o.secret, "secret", os.Getenv("AUTH_SECRET"), "token signing secret (defaults to AUTH_SECRET)")
	f.StringVar(&o.alg, "alg", "HS256", "token signing algorithm")
	f.IntVar(&o.frames, "frames", 10, "number of frames to send")
	f.DurationVar(&o.interval, "interval", 100*time.Millisecond, "delay between frames")
	f.IntVar(&o.width, "width", 640, "frame width")
	f.IntVar(&o.height, "height", 480, "frame height")
	f.StringVar(&o.sourceID, "source", "test-camera", "source id")
	f.StringVar(&o.pipelineID, "pipeline", "", "pipeline id (empty for passthrough)")
	f.StringVar(&o.productCode, "product-code", "", "product code for criteria lookup")
	f.StringVar(&o.processCode, "process-code", "", "process code for criteria lookup")
	f.StringVar(&o.itemID, "item", "", "target item id for criteria lookup")
	return cmd
}

func run(ctx context.Context, o options) error {
	if o.secret == "" {
		return errors.New("a signing secret is required (--secret or AUTH_SECRET)")
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Inspection hub streaming client")
	fmt.Println(strings.Repeat("=", 60))

	token, err := auth.Sign(o.secret, o.alg, "test-client", time.Now(), time.Hour)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}

	frameData, err := generateTestImage(o.width, o.height)
	if err != nil {
		return fmt.Errorf("generate test image: %w", err)
	}
	fmt.Printf("✓ Generated test image: %d bytes\n", len(frameData))

	conn, err := grpc.NewClient(o.addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("connect to %s: %w", o.addr, err)
	}
	defer conn.Close()

	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	stream, err := pb.NewVideoStreamServiceClient(conn).ProcessVideoStream(ctx)
	if err != nil {
		return fmt.Errorf("open stream: %w", err)
	}

	params := map[string]string{}
	for k, v := range map[string]string{
		"product_code":   o.productCode,
		"process_code":   o.processCode,
		"target_item_id": o.itemID,
	} {
		if v != "" {
			params[k] = v
		}
	}

	sendErr := make(chan error, 1)
	go func() {
		defer close(sendErr)
		for i := 1; i <= o.frames; i++ {
			err := stream.Send(&pb.Frame{
				SourceId:         o.sourceID,
				PipelineId:       o.pipelineID,
				TimestampMs:      time.Now().UnixMilli(),
				SequenceNumber:   int64(i),
				Width:            int32(o.width),
				Height:           int32(o.height),
				FrameData:        frameData,
				ProcessingParams: params,
			})
			if err != nil {
				sendErr <- fmt.Errorf("send frame %d: %w", i, err)
				return
			}
			time.Sleep(o.interval)
		}
		if err := stream.CloseSend(); err != nil {
			sendErr <- err
		}
	}()

	var received int
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("receive: %w", err)
		}
		received++
		printFrame(resp)
	}
	if err := <-sendErr; err != nil {
		return err
	}

	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("✅ %d/%d frames processed\n", received, o.frames)
	return nil
}

func printFrame(f *pb.ProcessedFrame) {
	line := fmt.Sprintf("#%d %-8s %7.2fms detections=%d",
		f.GetSequenceNumber(), services.StatusLabel(f.GetStatus()), f.GetProcessingTimeMs(), len(f.GetDetections()))
	if f.GetJudgment() != "" {
		line += fmt.Sprintf(" judgment=%s criteria=%s", f.GetJudgment(), f.GetCriteriaId())
	}
	if f.GetErrorMessage() != "" {
		line += " error=" + f.GetErrorMessage()
	}
	fmt.Println(line)
}

// generateTestImage renders a gradient with a dark square in the middle.
func generateTestImage(width, height int) ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBA{R: uint8(x * 255 / width), G: uint8(y * 255 / height), B: 128, A: 255}
			if x > width/3 && x < 2*width/3 && y > height/3 && y < 2*height/3 {
				c = color.RGBA{R: 20, G: 20, B: 20, A: 255}
			}
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
