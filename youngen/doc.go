// Package youngen implements a Baker-style semispace collector for the
// young generation of a managed-object runtime: an Eden allocation
// region plus two equal-sized survivor spaces that flip roles on each
// minor collection.
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package youngen
