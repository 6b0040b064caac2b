package order_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Assigned))
		assert.Equal(t, 3, int(order.Accepted))
		assert.Equal(t, 4, int(order.InTransit))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Assigned,
			order.Accepted,
			order.InTransit,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(7),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "Pending"},
			{order.Assigned, "Assigned"},
			{order.Accepted, "Accepted"},
			{order.InTransit, "InTransit"},
			{order.Delivered, "Delivered"},
			{order.Cancelled, "Cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(7),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "Unknown", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid status names", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Assigned,
			order.Accepted,
			order.InTransit,
			order.Delivered,
			order.Cancelled,
		}

		for _, expected := range validStatuses {
			t.Run(fmt.Sprintf("should parse %s", expected.String()), func(t *testing.T) {
				parsed, err := order.StatusFromString(expected.String())

				require.NoError(t, err)
				assert.Equal(t, expected, parsed)
			})
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, value := range []string{"Unknown", "pending", "", "Shipped"} {
			parsed, err := order.StatusFromString(value)

			require.Error(t, err)
			assert.Equal(t, order.Unknown, parsed)
			assert.Contains(t, err.Error(), "status is invalid")
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("Delivered and Cancelled are terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("active statuses are not terminal", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Assigned, order.Accepted, order.InTransit} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestStatus_Assign(t *testing.T) {
	t.Run("should allow transition from Pending to Assigned", func(t *testing.T) {
		newStatus, err := order.Pending.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, newStatus)
	})

	t.Run("should allow transition from Assigned to Assigned (reassignment)", func(t *testing.T) {
		newStatus, err := order.Assigned.Assign()

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, newStatus)
	})

	t.Run("should reject assignment from other statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Accepted, order.InTransit, order.Delivered, order.Cancelled} {
			t.Run(fmt.Sprintf("should reject from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Assign()

				require.Error(t, err)
				assert.Equal(t, order.Status(0), newStatus)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to assign", status.String()))
			})
		}
	})
}

func TestStatus_Unassign(t *testing.T) {
	t.Run("should allow transition from Assigned to Pending", func(t *testing.T) {
		newStatus, err := order.Assigned.Unassign()

		require.NoError(t, err)
		assert.Equal(t, order.Pending, newStatus)
	})

	t.Run("should reject unassignment from other statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Accepted, order.InTransit, order.Delivered, order.Cancelled} {
			newStatus, err := status.Unassign()

			require.Error(t, err)
			assert.Equal(t, order.Status(0), newStatus)
			assert.Contains(t, err.Error(), "is not a valid status to unassign")
		}
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should allow transition from Assigned to Accepted", func(t *testing.T) {
		newStatus, err := order.Assigned.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, newStatus)
	})

	t.Run("should reject acceptance from other statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Accepted, order.InTransit, order.Delivered, order.Cancelled} {
			newStatus, err := status.Accept()

			require.Error(t, err)
			assert.Equal(t, order.Status(0), newStatus)
			assert.Contains(t, err.Error(), "is not a valid status to accept")
		}
	})
}

func TestStatus_StartTransit(t *testing.T) {
	t.Run("should allow transition from Accepted to InTransit", func(t *testing.T) {
		newStatus, err := order.Accepted.StartTransit()

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, newStatus)
	})

	t.Run("should reject transit from other statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Assigned, order.InTransit, order.Delivered, order.Cancelled} {
			newStatus, err := status.StartTransit()

			require.Error(t, err)
			assert.Equal(t, order.Status(0), newStatus)
			assert.Contains(t, err.Error(), "is not a valid status to start transit")
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	t.Run("should allow transition from InTransit to Delivered", func(t *testing.T) {
		newStatus, err := order.InTransit.Deliver()

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("should reject delivery from other statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Assigned, order.Accepted, order.Delivered, order.Cancelled} {
			newStatus, err := status.Deliver()

			require.Error(t, err)
			assert.Equal(t, order.Status(0), newStatus)
			assert.Contains(t, err.Error(), "is not a valid status to deliver")
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should allow cancellation from any non-terminal status", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Assigned, order.Accepted, order.InTransit} {
			t.Run(fmt.Sprintf("should cancel from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Cancel()

				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, newStatus)
			})
		}
	})

	t.Run("should reject cancellation from terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Delivered, order.Cancelled} {
			newStatus, err := status.Cancel()

			require.Error(t, err)
			assert.Equal(t, order.Status(0), newStatus)
			assert.Contains(t, err.Error(), "is not a valid status to cancel")
		}
	})

	t.Run("should reject cancellation of invalid statuses", func(t *testing.T) {
		_, err := order.Unknown.Cancel()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid status")
	})
}

func TestStatus_ValidateCanHaveAgent(t *testing.T) {
	t.Run("Pending must not have an agent", func(t *testing.T) {
		require.NoError(t, order.Pending.ValidateCanHaveAgent(false))
		require.Error(t, order.Pending.ValidateCanHaveAgent(true))
	})

	t.Run("active statuses must have an agent", func(t *testing.T) {
		for _, status := range []order.Status{order.Assigned, order.Accepted, order.InTransit} {
			require.NoError(t, status.ValidateCanHaveAgent(true), "%s with agent", status)
			require.Error(t, status.ValidateCanHaveAgent(false), "%s without agent", status)
		}
	})

	t.Run("terminal statuses may have an agent or not", func(t *testing.T) {
		for _, status := range []order.Status{order.Delivered, order.Cancelled} {
			require.NoError(t, status.ValidateCanHaveAgent(true), "%s with agent", status)
			require.NoError(t, status.ValidateCanHaveAgent(false), "%s without agent", status)
		}
	})
}

func TestStatus_StateMachine(t *testing.T) {
	t.Run("should follow the full delivery workflow", func(t *testing.T) {
		status := order.Pending

		status, err := status.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, status)

		status, err = status.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.Accepted, status)

		status, err = status.StartTransit()
		require.NoError(t, err)
		assert.Equal(t, order.InTransit, status)

		status, err = status.Deliver()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, status)
	})

	t.Run("should handle rejection workflow", func(t *testing.T) {
		// Pending -> Assigned -> Assigned (reassigned) -> Pending (no replacement)
		status := order.Pending

		status, err := status.Assign()
		require.NoError(t, err)

		status, err = status.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, status)

		status, err = status.Unassign()
		require.NoError(t, err)
		assert.Equal(t, order.Pending, status)

		// Still assignable again
		status, err = status.Assign()
		require.NoError(t, err)
		assert.Equal(t, order.Assigned, status)
	})

	t.Run("should prevent skipping workflow steps", func(t *testing.T) {
		_, err := order.Pending.Deliver()
		require.Error(t, err)

		_, err = order.Assigned.StartTransit()
		require.Error(t, err)

		_, err = order.Accepted.Deliver()
		require.Error(t, err)
	})
}
