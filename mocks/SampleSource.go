package mocks

import "github.com/pdf/gochroma/common"
import "github.com/stretchr/testify/mock"

type SampleSource struct {
	mock.Mock
}

// Sample provides a mock function with given fields:
func (_m *SampleSource) Sample() common.Color {
	ret := _m.Called()

	var r0 common.Color
	if rf, ok := ret.Get(0).(func() common.Color); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(common.Color)
	}

	return r0
}
