package repository

import (
	"strings"
	"testing"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestBuildDriverUpdate(t *testing.T) {
	t.Run("reset to available clears assigned truck", func(t *testing.T) {
		s := entities.AvailabilityAvailable
		b := buildDriverUpdate(interfaces.DriverUpdate{Status: &s})

		expr := aws.ToString(b.input("drivers", "d-1").UpdateExpression)
		if !strings.Contains(expr, "REMOVE #assigned_truck") {
			t.Fatalf("expected assigned truck removed, got %q", expr)
		}
	})

	t.Run("not available keeps assigned truck", func(t *testing.T) {
		s := entities.AvailabilityNotAvailable
		b := buildDriverUpdate(interfaces.DriverUpdate{Status: &s})

		expr := aws.ToString(b.input("drivers", "d-1").UpdateExpression)
		if strings.Contains(expr, "REMOVE") {
			t.Fatalf("expected no removal, got %q", expr)
		}
	})

	t.Run("no status leaves assignment untouched", func(t *testing.T) {
		name := "Maria"
		b := buildDriverUpdate(interfaces.DriverUpdate{Name: &name})

		in := b.input("drivers", "d-1")
		expr := aws.ToString(in.UpdateExpression)
		if strings.Contains(expr, "REMOVE") || strings.Contains(expr, "#status") {
			t.Fatalf("unexpected expression: %q", expr)
		}
		if _, ok := in.ExpressionAttributeNames["#name"]; !ok {
			t.Fatalf("expected name in expression names, got %+v", in.ExpressionAttributeNames)
		}
	})
}
