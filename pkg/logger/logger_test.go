package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When initialized with the default writer", func() {
			So(Init(), ShouldBeNil)

			Convey("Then Get should return a logger", func() {
				So(Get(), ShouldNotBeNil)
				So(Sync(), ShouldBeNil)
			})
		})

		Convey("When initialized with a nil writer", func() {
			Convey("Then it should fail", func() {
				So(InitWithWriter(nil), ShouldNotBeNil)
			})
		})
	})
}

func TestLoggerOutput(t *testing.T) {
	Convey("Given a logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(InitWithWriter(&buf), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging with fields", func() {
			Get().Info(ctx, "records written", String("file", "out.json"), Int("count", 3), Error(errors.New("boom")))
			out := buf.String()

			Convey("Then the message, fields and source should be present", func() {
				So(out, ShouldContainSubstring, `msg="records written"`)
				So(out, ShouldContainSubstring, "file=out.json")
				So(out, ShouldContainSubstring, "count=3")
				So(out, ShouldContainSubstring, "error=boom")
				So(out, ShouldContainSubstring, "source=logger_test.go:")
			})
		})

		Convey("When using a named logger", func() {
			Named("sampler").Warn(ctx, "slow")

			Convey("Then the name should be attached", func() {
				So(buf.String(), ShouldContainSubstring, "logger=sampler")
			})
		})

		Convey("When the level is raised", func() {
			So(SetLevelString("error"), ShouldBeNil)
			Get().Info(ctx, "hidden")
			Get().Debug(ctx, "hidden too")
			Get().Error(ctx, "shown")

			Convey("Then lower levels should be dropped", func() {
				So(strings.Contains(buf.String(), "hidden"), ShouldBeFalse)
				So(buf.String(), ShouldContainSubstring, "shown")
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		for _, level := range []string{"debug", "INFO", "", "warn", "warning", " error "} {
			So(SetLevelString(level), ShouldBeNil)
		}
		So(SetLevelString("verbose"), ShouldNotBeNil)
		_ = SetLevelString("info")
	})
}
