package common

import "github.com/Freeeeeet/outpass_staff_bot/internal/controller/callbacks/common/keyboard"

// Callback data. Prefixes ending in ':' carry arguments.
const (
	CbMenu   = keyboard.MainMenu
	CbNoop   = keyboard.Noop
	CbLogout = "logout"
	CbCancel = "dlg_cancel"

	CbOutpasses          = "op_list"
	CbOutpassPage        = "op_page:"   // op_page:2
	CbOutpassFilter      = "op_filter:" // op_filter:pending
	CbOutpassSearch      = "op_search"
	CbOutpassClearSearch = "op_clear"
	CbOutpassView        = "op_view:"   // op_view:<id>
	CbOutpassImage       = "op_image:"  // op_image:<id>
	CbOutpassDecide      = "op_decide:" // op_decide:approve:<id>

	CbStudents             = "st_list"
	CbStudentPage          = "st_page:" // st_page:1
	CbStudentSearch        = "st_search"
	CbStudentClearSearch   = "st_clear"
	CbStudentView          = "st_view:"   // st_view:<id>
	CbStudentEdit          = "st_edit:"   // st_edit:<id>
	CbStudentField         = "st_field:"  // st_field:<id>:<field>
	CbStudentBlock         = "st_block:"  // st_block:<id>:1
	CbStudentDelete        = "st_delete:" // st_delete:<id>
	CbStudentConfirmDelete = "st_del_yes:"
	CbStudentPassword      = "st_pwd:" // st_pwd:<id>
	CbStudentNew           = "st_new"
	CbStudentUpload        = "st_upload"
	CbStudentTemplate      = "st_template"
	CbStudentExport        = "st_export"

	CbProfile     = "pf_view"
	CbProfileEdit = "pf_edit:" // pf_edit:<field>
)
