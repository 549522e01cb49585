package view

// Package view implements the derived list state shown by the resource pages:
// case-insensitive search filtering, locale-aware sorting, pagination windows,
// and CSV export of the filtered set. Everything here is a pure function of
// (collection, search, sort field, sort order, page, page size) so the visible
// page is always deterministic.
