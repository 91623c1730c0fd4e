// -*- Mode: Go; indent-tabs-mode: t -*-

/*
 * Copyright (C) 2025 Canonical Ltd
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 3 as
 * published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package testutil

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/check.v1"
)

type containsChecker struct {
	*check.CheckerInfo
}

// Contains is a Checker that looks for a needle in a haystack.
// The needle can be any object. The haystack can be a slice, a map (the
// values are searched) or a string.
var Contains check.Checker = &containsChecker{
	&check.CheckerInfo{Name: "Contains", Params: []string{"haystack", "needle"}},
}

func (c *containsChecker) Check(params []interface{}, names []string) (result bool, error string) {
	defer func() {
		if v := recover(); v != nil {
			result = false
			error = fmt.Sprint(v)
		}
	}()
	haystack, needle := params[0], params[1]
	switch haystackV := reflect.ValueOf(haystack); haystackV.Kind() {
	case reflect.Slice, reflect.Array:
		if needleV := reflect.ValueOf(needle); haystackV.Type().Elem() != needleV.Type() {
			panic(fmt.Sprintf("haystack contains items of type %s but needle is a %s",
				haystackV.Type().Elem(), needleV.Type()))
		}
		for i := 0; i < haystackV.Len(); i++ {
			if haystackV.Index(i).Interface() == needle {
				return true, ""
			}
		}
		return false, ""
	case reflect.Map:
		if needleV := reflect.ValueOf(needle); haystackV.Type().Elem() != needleV.Type() {
			panic(fmt.Sprintf("haystack contains items of type %s but needle is a %s",
				haystackV.Type().Elem(), needleV.Type()))
		}
		iter := haystackV.MapRange()
		for iter.Next() {
			if iter.Value().Interface() == needle {
				return true, ""
			}
		}
		return false, ""
	case reflect.String:
		return strings.Contains(haystack.(string), needle.(string)), ""
	default:
		panic(fmt.Sprintf("haystack is of unsupported type %T", haystack))
	}
}

type sameMapChecker struct {
	*check.CheckerInfo
}

// SameMap is a Checker that verifies two maps are the very same map
// value, not merely equal ones.
var SameMap check.Checker = &sameMapChecker{
	&check.CheckerInfo{Name: "SameMap", Params: []string{"obtained", "expected"}},
}

func (c *sameMapChecker) Check(params []interface{}, names []string) (result bool, error string) {
	obtained, expected := reflect.ValueOf(params[0]), reflect.ValueOf(params[1])
	if obtained.Kind() != reflect.Map || expected.Kind() != reflect.Map {
		return false, fmt.Sprintf("cannot compare %T with %T: both must be maps", params[0], params[1])
	}
	if obtained.IsNil() || expected.IsNil() {
		return false, "nil maps are never the same"
	}
	return obtained.Pointer() == expected.Pointer(), ""
}
