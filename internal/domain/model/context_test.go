package model_test

import (
	"testing"

	model "github.com/okian/scorehook/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestContext(t *testing.T) {
	convey.Convey("Given a new virtual-user context", t, func() {
		vu := model.NewContext()

		convey.Convey("Then it should have an ID and empty vars", func() {
			convey.So(vu.ID, convey.ShouldNotBeEmpty)
			convey.So(vu.Vars, convey.ShouldNotBeNil)
			convey.So(vu.Vars, convey.ShouldBeEmpty)
		})

		convey.Convey("And IDs should differ between contexts", func() {
			convey.So(model.NewContext().ID, convey.ShouldNotEqual, vu.ID)
		})

		convey.Convey("When no record has been written", func() {
			_, ok := vu.Record()

			convey.Convey("Then Record should report absence", func() {
				convey.So(ok, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When a record is stored under data", func() {
			vu.Vars[model.DataKey] = model.ScoreRecord{Timestamp: 10, Score: 3}
			rec, ok := vu.Record()

			convey.Convey("Then Record should return it", func() {
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(rec, convey.ShouldResemble, model.ScoreRecord{Timestamp: 10, Score: 3})
			})

			convey.Convey("And Payload should render it as a request body", func() {
				body, err := vu.Payload()
				convey.So(err, convey.ShouldBeNil)
				convey.So(string(body), convey.ShouldEqual, `{"data":{"timestamp":10,"score":3}}`)
			})
		})

		convey.Convey("When vars hold something other than a record", func() {
			vu.Vars[model.DataKey] = "not a record"
			_, ok := vu.Record()

			convey.Convey("Then Record should report absence", func() {
				convey.So(ok, convey.ShouldBeFalse)
			})
		})
	})

	convey.Convey("Given a nil context", t, func() {
		var vu *model.Context

		convey.Convey("Then Record and Payload should not panic", func() {
			_, ok := vu.Record()
			convey.So(ok, convey.ShouldBeFalse)
			body, err := vu.Payload()
			convey.So(err, convey.ShouldBeNil)
			convey.So(string(body), convey.ShouldEqual, "{}")
		})
	})
}
