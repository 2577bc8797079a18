package auth_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ucad-dsi/gestion-budget/internal/auth"
)

var _ = Describe("Permission table", func() {
	DescribeTable("Role.Can",
		func(role auth.Role, action auth.Action, expected bool) {
			Expect(role.Can(action)).To(Equal(expected))
		},
		Entry("user cannot view all lines", auth.RoleUser, auth.ActionViewAllLines, false),
		Entry("user cannot moderate", auth.RoleUser, auth.ActionModerateLines, false),
		Entry("user cannot manage users", auth.RoleUser, auth.ActionManageUsers, false),
		Entry("chef_dept can view all lines", auth.RoleChefDept, auth.ActionViewAllLines, true),
		Entry("chef_dept can moderate", auth.RoleChefDept, auth.ActionModerateLines, true),
		Entry("chef_dept cannot manage users", auth.RoleChefDept, auth.ActionManageUsers, false),
		Entry("direction can view all lines", auth.RoleDirection, auth.ActionViewAllLines, true),
		Entry("direction can moderate", auth.RoleDirection, auth.ActionModerateLines, true),
		Entry("direction can manage users", auth.RoleDirection, auth.ActionManageUsers, true),
		Entry("comptable can view all lines", auth.RoleComptable, auth.ActionViewAllLines, true),
		Entry("comptable can moderate", auth.RoleComptable, auth.ActionModerateLines, true),
		Entry("comptable cannot manage users", auth.RoleComptable, auth.ActionManageUsers, false),
		Entry("unknown role can do nothing", auth.Role("intern"), auth.ActionViewAllLines, false),
	)

	It("treats only the four known roles as valid", func() {
		Expect(auth.RoleUser.Valid()).To(BeTrue())
		Expect(auth.RoleChefDept.Valid()).To(BeTrue())
		Expect(auth.RoleDirection.Valid()).To(BeTrue())
		Expect(auth.RoleComptable.Valid()).To(BeTrue())
		Expect(auth.Role("admin").Valid()).To(BeFalse())
	})

	It("marks every moderating role as a reviewer", func() {
		Expect(auth.RoleUser.IsReviewer()).To(BeFalse())
		Expect(auth.RoleChefDept.IsReviewer()).To(BeTrue())
		Expect(auth.RoleDirection.IsReviewer()).To(BeTrue())
		Expect(auth.RoleComptable.IsReviewer()).To(BeTrue())
	})
})
