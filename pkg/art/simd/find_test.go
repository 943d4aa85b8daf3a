package simd_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/dnsart/pkg/art/simd"
)

func TestFindEq16(t *testing.T) {
	Convey("FindEq16", t, func() {
		var keys [16]byte
		copy(keys[:], []byte{1, 3, 5, 7, 9, 11, 13})
		n := uint8(7)

		Convey("should return the 1-based index of a present key", func() {
			So(simd.FindEq16(&keys, n, 5), ShouldEqual, 3)
			So(simd.FindEq16(&keys, n, 1), ShouldEqual, 1)
			So(simd.FindEq16(&keys, n, 13), ShouldEqual, 7)
		})

		Convey("should return 0 for an absent key", func() {
			So(simd.FindEq16(&keys, n, 4), ShouldEqual, 0)
		})

		Convey("should ignore slots at or beyond n", func() {
			keys[10] = 5
			So(simd.FindEq16(&keys, n, 5), ShouldEqual, 3)
		})
	})
}

func TestFindEq32(t *testing.T) {
	Convey("FindEq32", t, func() {
		var keys [32]byte
		for i := range keys {
			keys[i] = byte(i * 2)
		}
		n := uint8(32)

		Convey("should return the 1-based index of a present key", func() {
			So(simd.FindEq32(&keys, n, 0), ShouldEqual, 1)
			So(simd.FindEq32(&keys, n, 62), ShouldEqual, 32)
			So(simd.FindEq32(&keys, n, 30), ShouldEqual, 16)
		})

		Convey("should return 0 for an absent key", func() {
			So(simd.FindEq32(&keys, n, 1), ShouldEqual, 0)
		})
	})
}

func TestFindGt16(t *testing.T) {
	Convey("FindGt16", t, func() {
		var keys [16]byte
		copy(keys[:], []byte{2, 4, 6, 8})
		n := uint8(4)

		Convey("should return the insertion point for a new key", func() {
			So(simd.FindGt16(&keys, n, 5), ShouldEqual, 3)
			So(simd.FindGt16(&keys, n, 0), ShouldEqual, 1)
		})

		Convey("should return 0 when the key sorts after every existing key", func() {
			So(simd.FindGt16(&keys, n, 9), ShouldEqual, 0)
		})
	})
}

func TestFindGt32(t *testing.T) {
	Convey("FindGt32", t, func() {
		var keys [32]byte
		for i := range keys {
			keys[i] = byte(i * 2)
		}
		n := uint8(32)

		Convey("should return the insertion point for a new key", func() {
			So(simd.FindGt32(&keys, n, 5), ShouldEqual, 4)
		})

		Convey("should return 0 when the key sorts after every existing key", func() {
			So(simd.FindGt32(&keys, n, 100), ShouldEqual, 0)
		})
	})
}

func TestHave256(t *testing.T) {
	Convey("Have256 is a build-tag constant reflecting this architecture", t, func() {
		So(simd.Have256, ShouldBeIn, []bool{true, false})
	})
}
